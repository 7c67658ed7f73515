package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/ascent/internal/service"
)

type Server struct {
	mx                   *chi.Mux
	userService          service.UserServiceI
	goalsService         service.GoalsServiceI
	tutorService         service.TutorServiceI
	notificationsService service.NotificationsServiceI
	checkinsService      service.CheckinsServiceI
	jwtService           JWTServiceI
}

type ServicesList struct {
	UserService          service.UserServiceI
	GoalsService         service.GoalsServiceI
	TutorService         service.TutorServiceI
	NotificationsService service.NotificationsServiceI
	CheckinsService      service.CheckinsServiceI
	JwtService           JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                   chi.NewMux(),
		userService:          servicesOptions.UserService,
		goalsService:         servicesOptions.GoalsService,
		tutorService:         servicesOptions.TutorService,
		notificationsService: servicesOptions.NotificationsService,
		checkinsService:      servicesOptions.CheckinsService,
		jwtService:           servicesOptions.JwtService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/user", s.GetProfile)
			r.Delete("/user", s.DeleteAccount)
			r.Post("/goals", s.CreateGoal)
			r.Get("/goals", s.GetGoals)
			r.Get("/goals/{id}", s.GetGoal)
			r.Patch("/goals/{id}", s.EditGoal)
			r.Delete("/goals/{id}", s.DeleteGoal)
			r.Patch("/goals/{id}/chunk/{weekIndex}", s.ToggleChunk)
			r.Patch("/goals/{id}/checkin", s.UpdateCheckinFrequency)
			r.Post("/goals/{id}/duplicate", s.DuplicateGoal)
			r.Post("/goals/{id}/archive", s.ArchiveGoal)
			r.Post("/goals/{id}/reactivate", s.ReactivateGoal)
			r.Post("/goals/{id}/complete", s.CompleteGoal)
			r.Post("/tutor/reply", s.TutorReply)
			r.Get("/tutor/history/{goalId}", s.TutorHistory)
			r.Get("/notifications", s.GetNotifications)
			r.Post("/notifications", s.CreateNotification)
			r.Patch("/notifications/{id}/read", s.MarkNotificationRead)
			r.Delete("/notifications/{id}", s.DeleteNotification)
			r.Post("/checkins", s.UpsertCheckin)
			r.Get("/checkins/upcoming", s.GetUpcomingCheckins)
		})
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}
