package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/joyapp/joy-backend/internal/telemetry"
	"github.com/joyapp/joy-backend/internal/usecases"
)

// JoyAppServer is the REST API HTTP server for the Joy application.
type JoyAppServer struct {
	Port                     int                              `config:"HTTP_PORT" default:"8080"`
	Logger                   *log.Logger                      `resolve:""`
	CreateGiftUseCase        usecases.CreateGift              `resolve:""`
	ListGiftsUseCase         usecases.ListGifts               `resolve:""`
	CreateMessageUseCase     usecases.CreateMessage           `resolve:""`
	ListMessagesUseCase      usecases.ListMessages            `resolve:""`
	SendCommunicationUseCase usecases.SendCommunication       `resolve:""`
	GenerateMessageUseCase   usecases.GenerateOccasionMessage `resolve:""`
	AddFriendUseCase         usecases.AddFriend               `resolve:""`
	ListFriendsUseCase       usecases.ListFriends             `resolve:""`
	UpsertUserUseCase        usecases.UpsertUser              `resolve:""`
}

// Routes returns the API routes of the server.
func (api JoyAppServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Health)

	mux.HandleFunc("POST /v1/gifts", api.CreateGift)
	mux.HandleFunc("GET /v1/gifts", api.ListGifts)
	mux.HandleFunc("GET /v1/gifts/{giftId}", api.GetGift)

	mux.HandleFunc("POST /v1/messages", api.CreateMessage)
	mux.HandleFunc("GET /v1/messages", api.ListMessages)
	mux.HandleFunc("GET /v1/messages/{messageId}", api.GetMessage)

	mux.HandleFunc("POST /v1/communications", api.SendCommunication)
	mux.HandleFunc("POST /v1/ai/messages", api.GenerateMessage)

	mux.HandleFunc("POST /v1/friends", api.AddFriend)
	mux.HandleFunc("GET /v1/friends", api.ListFriends)

	mux.HandleFunc("PUT /v1/users", api.UpsertUser)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("joyapp-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the JoyAppServer.
func (api JoyAppServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Routes(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("JoyAppServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("JoyAppServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("JoyAppServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the JoyAppServer is ready by performing a health check.
func (api JoyAppServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Health reports liveness.
func (api JoyAppServer) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
