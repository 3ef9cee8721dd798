package services

import (
	"context"

	"campus-news-api/models"
	"campus-news-api/repositories"
)

type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *contactService) GetList(ctx context.Context, params models.ListParams) ([]models.ContactMessage, int64, error) {
	return s.contactRepo.GetList(ctx, params)
}

func (s *contactService) MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	message, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	message.Read = true
	if err := s.contactRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	return s.contactRepo.Delete(ctx, id)
}
