package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"construction-tracker/backend/handlers"
	"construction-tracker/backend/logging"
	"construction-tracker/backend/middleware"
	"construction-tracker/backend/models"
	"construction-tracker/backend/services"
	"construction-tracker/backend/storage"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Construction Tracker...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	mongoCollectionName := os.Getenv("MONGO_COLLECTION")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	kvCollection := client.Database(mongoDBName).Collection(mongoCollectionName)
	store := storage.NewBreakerStore(storage.NewMongoStore(kvCollection))

	userService := services.NewUserService(store)
	projectService := services.NewProjectService(store)
	logService := services.NewLogService(store)
	sopService := services.NewSOPService(store)
	announcementService := services.NewAnnouncementService()

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer loadCancel()
	type loader struct {
		name string
		load func(context.Context) error
	}
	for _, l := range []loader{
		{"users", userService.Load},
		{"projects", projectService.Load},
		{"logs", logService.Load},
		{"sops", sopService.Load},
	} {
		if err := l.load(loadCtx); err != nil {
			logging.Logger.Fatalf("Event ID: STORE_LOAD_FAILED, Description: Loading %s collection failed: %v", l.name, err)
		}
	}
	if err := userService.RestoreSession(loadCtx); err != nil {
		logging.Logger.Warnf("Event ID: SESSION_RESTORE_FAILED, Description: Could not restore saved session: %v", err)
	}

	userHandler := &handlers.UserHandler{UserService: userService}
	loginHandler := &handlers.LoginHandler{UserService: userService}
	projectHandler := handlers.NewProjectHandler(projectService)
	logHandler := handlers.NewLogHandler(logService)
	sopHandler := handlers.NewSOPHandler(sopService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	anyRole := []string{models.RoleAdmin, models.RoleMember}
	adminOnly := []string{models.RoleAdmin}

	r := mux.NewRouter()

	// Open routes.
	r.HandleFunc("/api/register", userHandler.Register).Methods("POST")
	r.HandleFunc("/api/login", loginHandler.Login).Methods("POST")
	r.HandleFunc("/api/forgot-password", loginHandler.ForgotPassword).Methods("POST")

	// Account routes.
	r.Handle("/api/logout", middleware.Auth(http.HandlerFunc(loginHandler.Logout), anyRole...)).Methods("POST")
	r.Handle("/api/users/me", middleware.Auth(http.HandlerFunc(userHandler.Me), anyRole...)).Methods("GET")
	r.Handle("/api/users/change-password", middleware.Auth(http.HandlerFunc(userHandler.ChangePassword), anyRole...)).Methods("POST")
	r.Handle("/api/users/profile", middleware.Auth(http.HandlerFunc(userHandler.UpdateProfile), anyRole...)).Methods("PATCH")
	r.Handle("/api/users", middleware.Auth(http.HandlerFunc(userHandler.GetAllUsers), adminOnly...)).Methods("GET")
	r.Handle("/api/users/{id}/approve", middleware.Auth(http.HandlerFunc(userHandler.Approve), adminOnly...)).Methods("POST")
	r.Handle("/api/users/{id}", middleware.Auth(http.HandlerFunc(userHandler.Delete), adminOnly...)).Methods("DELETE")

	// Project routes.
	r.Handle("/api/projects", middleware.Auth(http.HandlerFunc(projectHandler.ListProjects), anyRole...)).Methods("GET")
	r.Handle("/api/projects/{id}/schedule", middleware.Auth(http.HandlerFunc(projectHandler.GetSchedule), anyRole...)).Methods("GET")
	r.Handle("/api/projects", middleware.Auth(http.HandlerFunc(projectHandler.CreateProject), adminOnly...)).Methods("POST")
	r.Handle("/api/projects/{id}", middleware.Auth(http.HandlerFunc(projectHandler.UpdateProject), adminOnly...)).Methods("PATCH")
	r.Handle("/api/projects/{id}", middleware.Auth(http.HandlerFunc(projectHandler.DeleteProject), adminOnly...)).Methods("DELETE")

	// Construction log routes.
	r.Handle("/api/logs", middleware.Auth(http.HandlerFunc(logHandler.ListLogs), anyRole...)).Methods("GET")
	r.Handle("/api/logs", middleware.Auth(http.HandlerFunc(logHandler.CreateLog), anyRole...)).Methods("POST")
	r.Handle("/api/logs/{id}", middleware.Auth(http.HandlerFunc(logHandler.DeleteLog), anyRole...)).Methods("DELETE")

	// SOP routes.
	r.Handle("/api/sops", middleware.Auth(http.HandlerFunc(sopHandler.ListSOPs), anyRole...)).Methods("GET")
	r.Handle("/api/sops/categories", middleware.Auth(http.HandlerFunc(sopHandler.ListCategories), anyRole...)).Methods("GET")
	r.Handle("/api/sops", middleware.Auth(http.HandlerFunc(sopHandler.CreateSOP), adminOnly...)).Methods("POST")
	r.Handle("/api/sops/{id}", middleware.Auth(http.HandlerFunc(sopHandler.UpdateSOP), adminOnly...)).Methods("PATCH")
	r.Handle("/api/sops/{id}", middleware.Auth(http.HandlerFunc(sopHandler.DeleteSOP), adminOnly...)).Methods("DELETE")

	// Announcement routes.
	r.Handle("/api/announcements", middleware.Auth(http.HandlerFunc(announcementHandler.ListAnnouncements), anyRole...)).Methods("GET")
	r.Handle("/api/announcements", middleware.Auth(http.HandlerFunc(announcementHandler.CreateAnnouncement), adminOnly...)).Methods("POST")
	r.Handle("/api/announcements/{id}", middleware.Auth(http.HandlerFunc(announcementHandler.UpdateAnnouncement), adminOnly...)).Methods("PATCH")
	r.Handle("/api/announcements/{id}", middleware.Auth(http.HandlerFunc(announcementHandler.DeleteAnnouncement), adminOnly...)).Methods("DELETE")

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", serverPort),
		Handler:      corsRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
