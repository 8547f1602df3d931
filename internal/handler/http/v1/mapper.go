package v1

import "github.com/2023FHIT047/crisisLink2/internal/models"

// DTOToIncidentModel преобразует DTO репорта в доменную модель
func DTOToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:         dto.Title,
		Description:   dto.Description,
		Address:       dto.Address,
		City:          dto.City,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		ImageURL:      dto.ImageURL,
		Severity:      models.IncidentSeverity(dto.Severity),
		ReporterName:  dto.ReporterName,
		ReporterPhone: dto.ReporterPhone,
		Verified:      dto.Verified,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                 model.ID,
		Title:              model.Title,
		Description:        model.Description,
		Address:            model.Address,
		City:               model.City,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		ImageURL:           model.ImageURL,
		Severity:           model.Severity,
		Status:             model.Status,
		Verified:           model.Verified,
		ReporterID:         model.ReporterID,
		ReporterName:       model.ReporterName,
		ReporterPhone:      model.ReporterPhone,
		FeedbackStatus:     model.FeedbackStatus,
		AssignedVolunteers: model.AssignedVolunteers,
		AssignedCenters:    model.AssignedCenters,
		VolunteerTasks:     model.VolunteerTasks,
		FieldReports:       model.FieldReports,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOToReviewModel преобразует DTO дебрифинга в доменную модель
func DTOToReviewModel(dto ArchiveDebriefRequest) *models.Review {
	return &models.Review{
		FullName:   dto.FullName,
		Role:       dto.Role,
		Content:    dto.Content,
		Rating:     dto.Rating,
		IncidentID: dto.IncidentID,
	}
}

// ModelToReviewResponse преобразует доменную модель отзыва в DTO для ответа
func ModelToReviewResponse(model *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         model.ID,
		FullName:   model.FullName,
		Role:       model.Role,
		Content:    model.Content,
		Rating:     model.Rating,
		IsVerified: model.IsVerified,
		IncidentID: model.IncidentID,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelsToReviewResponses преобразует слайс отзывов в слайс DTO
func ModelsToReviewResponses(models []*models.Review) []*ReviewResponse {
	responses := make([]*ReviewResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReviewResponse(model)
	}
	return responses
}

// ModelToStatsResponse преобразует командные метрики в DTO для ответа
func ModelToStatsResponse(model *models.IncidentStats) *StatsResponse {
	return &StatsResponse{
		TotalIncidents:      model.TotalIncidents,
		TotalResolved:       model.TotalResolved,
		SuccessRate:         model.SuccessRate,
		CriticalStabilized:  model.CriticalStabilized,
		AverageReviewRating: model.AverageReviewRating,
	}
}
