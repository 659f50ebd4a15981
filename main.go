package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"sponsorlink_server/routes"
	"sponsorlink_server/services"
	"sponsorlink_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	s3Service, err := services.NewS3Service(os.Getenv("S3_BUCKET_NAME"), os.Getenv("AWS_REGION"))
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Initialize Services
	authService := &services.AuthService{Dynamo: dynamoService, JWTSecret: jwtSecret}
	profileService := &services.ProfileService{Dynamo: dynamoService, Images: s3Service}
	matchService := &services.MatchService{Dynamo: dynamoService, Profiles: profileService}
	chatService := services.NewChatService(dynamoService)
	conversationService := &services.ConversationService{
		Matches:  matchService,
		Profiles: profileService,
		Chat:     chatService,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SponsorLink")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Live message feed
	socketServer := socket.NewSocketServer(chatService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterProfileRoutes(r, profileService, jwtSecret)
	routes.RegisterActionRoutes(r, profileService, matchService, jwtSecret)
	routes.RegisterMatchRoutes(r, conversationService, jwtSecret)
	routes.RegisterChatRoutes(r, chatService, matchService, profileService, jwtSecret)
	routes.RegisterS3Routes(r, s3Service, jwtSecret)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
