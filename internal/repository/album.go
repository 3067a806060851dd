package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var (
	ErrAlbumNotFound  = dao.ErrAlbumNotFound
	ErrAlbumNameTaken = dao.ErrAlbumNameTaken
	ErrPhotoNotFound  = dao.ErrPhotoNotFound
)

type AlbumDAO interface {
	Insert(ctx context.Context, album dao.Album) (dao.Album, error)
	FindByID(ctx context.Context, id uint) (dao.Album, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Album, error)
	InsertPhoto(ctx context.Context, photo dao.Photo) (dao.Photo, error)
	FindPhotoByID(ctx context.Context, id uint) (dao.Photo, error)
	InsertComment(ctx context.Context, comment dao.Comment) (dao.Comment, error)
}

type AlbumRepository struct {
	dao AlbumDAO
}

func NewAlbumRepository(dao AlbumDAO) *AlbumRepository {
	return &AlbumRepository{
		dao: dao,
	}
}

func (r *AlbumRepository) daoToDomain(a dao.Album) domain.Album {
	return domain.Album{
		ID:          a.ID,
		EventID:     a.EventID,
		Name:        a.Name,
		Description: a.Description,
		CreatorID:   a.CreatorID,
		PhotoCount:  a.PhotoCount,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *AlbumRepository) photoDaoToDomain(p dao.Photo) domain.Photo {
	return domain.Photo{
		ID:           p.ID,
		AlbumID:      p.AlbumID,
		EventID:      p.EventID,
		AuthorID:     p.AuthorID,
		Caption:      p.Caption,
		ImageURL:     p.ImageURL,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *AlbumRepository) commentDaoToDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:        c.ID,
		PhotoID:   c.PhotoID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		IsEdited:  c.IsEdited,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *AlbumRepository) Create(ctx context.Context, album domain.Album) (domain.Album, error) {
	created, err := r.dao.Insert(ctx, dao.Album{
		EventID:     album.EventID,
		Name:        album.Name,
		Description: album.Description,
		CreatorID:   album.CreatorID,
	})
	if err != nil {
		return domain.Album{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AlbumRepository) FindByID(ctx context.Context, id uint) (domain.Album, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Album{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AlbumRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Album, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	albums := make([]domain.Album, 0, len(found))
	for _, a := range found {
		albums = append(albums, r.daoToDomain(a))
	}

	return albums, nil
}

func (r *AlbumRepository) CreatePhoto(ctx context.Context, photo domain.Photo) (domain.Photo, error) {
	created, err := r.dao.InsertPhoto(ctx, dao.Photo{
		AlbumID:  photo.AlbumID,
		EventID:  photo.EventID,
		AuthorID: photo.AuthorID,
		Caption:  photo.Caption,
		ImageURL: photo.ImageURL,
	})
	if err != nil {
		return domain.Photo{}, fmt.Errorf("r.dao.InsertPhoto -> %w", err)
	}

	return r.photoDaoToDomain(created), nil
}

func (r *AlbumRepository) FindPhotoByID(ctx context.Context, id uint) (domain.Photo, error) {
	found, err := r.dao.FindPhotoByID(ctx, id)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("r.dao.FindPhotoByID -> %w", err)
	}

	return r.photoDaoToDomain(found), nil
}

func (r *AlbumRepository) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.dao.InsertComment(ctx, dao.Comment{
		PhotoID:  comment.PhotoID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.InsertComment -> %w", err)
	}

	return r.commentDaoToDomain(created), nil
}
