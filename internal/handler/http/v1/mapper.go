package v1

import "github.com/shenikar/road_hazard_map/internal/models"

// DTOToHazardModel преобразует DTO создания в доменную модель.
// Координаты передаются отдельно, так как они уже разобраны из строк.
func DTOToHazardModel(dto CreateHazardRequest, latitude, longitude float64) *models.Hazard {
	return &models.Hazard{
		Type:      dto.Type,
		Latitude:  latitude,
		Longitude: longitude,
		Source:    dto.Source,
		Note:      dto.Note,
	}
}

// ModelToHazardResponse преобразует доменную модель в DTO для ответа
func ModelToHazardResponse(model *models.Hazard) *HazardResponse {
	return &HazardResponse{
		ID:        model.ID,
		Type:      model.Type,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Source:    model.Source,
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToHazardResponses преобразует слайс моделей в слайс DTO
func ModelsToHazardResponses(models []*models.Hazard) []*HazardResponse {
	responses := make([]*HazardResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHazardResponse(model)
	}
	return responses
}
