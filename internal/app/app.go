package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/joyapp/joy-backend/internal/adapters/inbound/http"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/config"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/email"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/log"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/mongodb"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/openai"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/rabbitmq"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/time"
	"github.com/joyapp/joy-backend/internal/adapters/outbound/twilio"
	"github.com/joyapp/joy-backend/internal/telemetry"
	"github.com/joyapp/joy-backend/internal/usecases"
)

// NewJoyApp creates and returns a new instance of the Joy application.
func NewJoyApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&mongodb.InitClient{},
			&mongodb.InitGiftRepository{},
			&mongodb.InitMessageRepository{},
			&mongodb.InitUserRepository{},
			&mongodb.InitFriendshipRepository{},
			&time.InitCurrentTimeProvider{},
			&rabbitmq.InitConnection{},
			&rabbitmq.InitPublisher{},
			&email.InitChannel{},
			&twilio.InitClient{},
			&twilio.InitSMSChannel{},
			&twilio.InitWhatsAppChannel{},
			&openai.InitLLMClient{},

			&usecases.InitCreateGift{},
			&usecases.InitCreateMessage{},
			&usecases.InitListGifts{},
			&usecases.InitListMessages{},
			&usecases.InitSendCommunication{},
			&usecases.InitGenerateOccasionMessage{},
			&usecases.InitAddFriend{},
			&usecases.InitListFriends{},
			&usecases.InitUpsertUser{},
		).
		Host(
			&http.JoyAppServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
