package v1

import "github.com/shenikar/help_request_system/internal/models"

// DTOToLocation собирает координаты из провалидированного DTO
func DTOToLocation(latitude, longitude *float64) models.Location {
	var loc models.Location
	if latitude != nil {
		loc.Latitude = *latitude
	}
	if longitude != nil {
		loc.Longitude = *longitude
	}
	return loc
}

func locationResponse(loc models.Location) LocationResponse {
	return LocationResponse{Latitude: loc.Latitude, Longitude: loc.Longitude}
}

// ModelToHelpRequestResponse преобразует доменную модель в DTO для ответа
func ModelToHelpRequestResponse(model *models.HelpRequest) *HelpRequestResponse {
	return &HelpRequestResponse{
		ID:                model.ID,
		RequesterID:       model.RequesterID,
		RequesterName:     model.RequesterName,
		Location:          locationResponse(model.Location),
		Status:            string(model.Status),
		AssignedOfficerID: model.AssignedOfficerID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToHelpRequestResponses преобразует срез моделей в срез DTO
func ModelsToHelpRequestResponses(requests []*models.HelpRequest) []*HelpRequestResponse {
	responses := make([]*HelpRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = ModelToHelpRequestResponse(r)
	}
	return responses
}

func ModelToAnonymousSOSResponse(model *models.AnonymousSOS) *AnonymousSOSResponse {
	return &AnonymousSOSResponse{
		ID:        model.ID,
		Location:  locationResponse(model.Location),
		CreatedAt: model.CreatedAt,
	}
}

func ModelsToAnonymousSOSResponses(signals []*models.AnonymousSOS) []*AnonymousSOSResponse {
	responses := make([]*AnonymousSOSResponse, len(signals))
	for i, s := range signals {
		responses[i] = ModelToAnonymousSOSResponse(s)
	}
	return responses
}
