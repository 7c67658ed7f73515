// @title Ascent API
// @description API for the learning goal tracker "Ascent"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/ascent/internal/api"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/internal/service"
	"github.com/limbo/ascent/pkg/config"
	jwtservice "github.com/limbo/ascent/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	messagesRepo := repository.NewMessagesRepo(&dbCfg)
	notificationsRepo := repository.NewNotificationsRepo(&dbCfg)
	checkinsRepo := repository.NewCheckinsRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:          service.NewUserService(usersRepo),
		GoalsService:         service.NewGoalsService(goalsRepo, messagesRepo),
		TutorService:         service.NewTutorService(goalsRepo, messagesRepo),
		NotificationsService: service.NewNotificationsService(notificationsRepo),
		CheckinsService:      service.NewCheckinsService(goalsRepo, checkinsRepo),
		JwtService:           jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
