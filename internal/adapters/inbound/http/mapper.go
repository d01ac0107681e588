package http

import (
	"time"

	"github.com/joyapp/joy-backend/internal/domain"
)

// GiftResp is the wire representation of a gift.
type GiftResp struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SenderEmail    string    `json:"sender_email"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  *string   `json:"recipient_name,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// MessageResp is the wire representation of a message.
type MessageResp struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	SenderEmail    string    `json:"sender_email"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  *string   `json:"recipient_name,omitempty"`
	MessageType    string    `json:"message_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserResp is the wire representation of a user.
type UserResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	Birthday  *string   `json:"birthday,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CommunicationResp is the wire representation of a dispatch outcome.
type CommunicationResp struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	ErrorDetails *string `json:"error_details,omitempty"`
}

// GeneratedMessageResp is the wire representation of a generation result.
type GeneratedMessageResp struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func toError(err error) ErrorResp {
	switch e := err.(type) {
	case *domain.ValidationErr:
		return newErrorResp(ErrorCode_BadRequest, e.Error())
	case *domain.NotFoundErr:
		return newErrorResp(ErrorCode_NotFound, e.Error())
	default:
		return newErrorResp(ErrorCode_InternalError, "internal server error")
	}
}

func toGift(g domain.Gift) GiftResp {
	return GiftResp{
		ID:             g.ID.String(),
		Title:          g.Title,
		Description:    g.Description,
		SenderEmail:    g.SenderEmail,
		RecipientEmail: g.RecipientEmail,
		RecipientName:  g.RecipientName,
		Status:         string(g.Status),
		CreatedAt:      g.CreatedAt,
	}
}

func toMessage(m domain.Message) MessageResp {
	return MessageResp{
		ID:             m.ID.String(),
		Content:        m.Content,
		SenderEmail:    m.SenderEmail,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		MessageType:    m.MessageType,
		CreatedAt:      m.CreatedAt,
	}
}

func toUser(u domain.User) UserResp {
	resp := UserResp{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.Birthday != nil {
		birthday := u.Birthday.Format(time.DateOnly)
		resp.Birthday = &birthday
	}
	return resp
}

func toCommunicationResult(r domain.CommunicationResult) CommunicationResp {
	return CommunicationResp{
		Success:      r.Success,
		Message:      r.Message,
		ErrorDetails: r.ErrorDetails,
	}
}

func toGeneratedMessage(r domain.MessageGenerationResult) GeneratedMessageResp {
	resp := GeneratedMessageResp{
		Message:     r.Message,
		Suggestions: r.Suggestions,
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp
}
