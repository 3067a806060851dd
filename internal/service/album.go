package service

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrAlbumNotFound  = repository.ErrAlbumNotFound
	ErrAlbumNameTaken = repository.ErrAlbumNameTaken
	ErrPhotoNotFound  = repository.ErrPhotoNotFound
)

type AlbumRepository interface {
	Create(ctx context.Context, album domain.Album) (domain.Album, error)
	FindByID(ctx context.Context, id uint) (domain.Album, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Album, error)
	CreatePhoto(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	FindPhotoByID(ctx context.Context, id uint) (domain.Photo, error)
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}

type AlbumEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type AlbumService struct {
	repo      AlbumRepository
	eventRepo AlbumEventRepository
}

func NewAlbumService(repo AlbumRepository, eventRepo AlbumEventRepository) *AlbumService {
	return &AlbumService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *AlbumService) requireParticipant(ctx context.Context, callerID, eventID uint) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if !event.IsParticipant(callerID) {
		return ErrNotEventParticipant
	}

	return nil
}

func (s *AlbumService) CreateAlbum(ctx context.Context, album domain.Album) (domain.Album, error) {
	if err := s.requireParticipant(ctx, album.CreatorID, album.EventID); err != nil {
		return domain.Album{}, err
	}

	created, err := s.repo.Create(ctx, album)
	if err != nil {
		return domain.Album{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AlbumService) ListEventAlbums(ctx context.Context, callerID, eventID uint) ([]domain.Album, error) {
	if err := s.requireParticipant(ctx, callerID, eventID); err != nil {
		return nil, err
	}

	albums, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return albums, nil
}

// AddPhoto records an uploaded photo. The file itself is written by the
// handler; the service only checks access and keeps the counters right.
func (s *AlbumService) AddPhoto(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	album, err := s.repo.FindByID(ctx, photo.AlbumID)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.requireParticipant(ctx, photo.AuthorID, album.EventID); err != nil {
		return domain.Photo{}, err
	}
	photo.EventID = album.EventID

	created, err := s.repo.CreatePhoto(ctx, photo)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("s.repo.CreatePhoto -> %w", err)
	}

	return created, nil
}

func (s *AlbumService) AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	photo, err := s.repo.FindPhotoByID(ctx, comment.PhotoID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.FindPhotoByID -> %w", err)
	}

	if err = s.requireParticipant(ctx, comment.AuthorID, photo.EventID); err != nil {
		return domain.Comment{}, err
	}

	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.CreateComment -> %w", err)
	}

	return created, nil
}
