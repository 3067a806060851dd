package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gatherly/gatherly-api/internal/api/middleware"
	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/service"
)

type fakeUserService struct {
	getUserFunc func(ctx context.Context, id uint) (domain.User, error)
}

func (f *fakeUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	if f.getUserFunc != nil {
		return f.getUserFunc(ctx, id)
	}
	return domain.User{ID: id, Username: "tester", IsActive: true}, nil
}

func (f *fakeUserService) ListUsers(_ context.Context, _, _ int) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserService) SearchUsers(_ context.Context, _ string, _, _ int) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserService) UpdateUser(_ context.Context, _, id uint, _ domain.UserUpdate) (domain.User, error) {
	return domain.User{ID: id}, nil
}

func (f *fakeUserService) DeleteUser(_ context.Context, _, _ uint) error {
	return nil
}

type fakeGroupService struct {
	joinGroupFunc  func(ctx context.Context, callerID, id uint) (domain.Group, error)
	leaveGroupFunc func(ctx context.Context, callerID, id uint) error
	getGroupFunc   func(ctx context.Context, callerID, id uint) (domain.GroupDetail, error)
}

func (f *fakeGroupService) CreateGroup(_ context.Context, group domain.Group) (domain.Group, error) {
	group.ID = 1
	return group, nil
}

func (f *fakeGroupService) GetGroup(ctx context.Context, callerID, id uint) (domain.GroupDetail, error) {
	if f.getGroupFunc != nil {
		return f.getGroupFunc(ctx, callerID, id)
	}
	return domain.GroupDetail{}, nil
}

func (f *fakeGroupService) ListGroups(_ context.Context, _ *domain.GroupType, _, _ int) ([]domain.Group, error) {
	return nil, nil
}

func (f *fakeGroupService) ListUserGroups(_ context.Context, _ uint, _, _ int) ([]domain.Group, error) {
	return nil, nil
}

func (f *fakeGroupService) UpdateGroup(_ context.Context, _, id uint, _ domain.GroupUpdate) (domain.Group, error) {
	return domain.Group{ID: id}, nil
}

func (f *fakeGroupService) DeleteGroup(_ context.Context, _, _ uint) error {
	return nil
}

func (f *fakeGroupService) JoinGroup(ctx context.Context, callerID, id uint) (domain.Group, error) {
	if f.joinGroupFunc != nil {
		return f.joinGroupFunc(ctx, callerID, id)
	}
	return domain.Group{ID: id}, nil
}

func (f *fakeGroupService) LeaveGroup(ctx context.Context, callerID, id uint) error {
	if f.leaveGroupFunc != nil {
		return f.leaveGroupFunc(ctx, callerID, id)
	}
	return nil
}

func (f *fakeGroupService) PromoteUser(_ context.Context, _, id, _ uint) (domain.Group, error) {
	return domain.Group{ID: id}, nil
}

// newGroupTestRouter mounts the group routes behind a stub that plays
// the role of the JWT middleware.
func newGroupTestRouter(svc GroupService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(func(ctx *gin.Context) {
		if authenticated {
			ctx.Set(middleware.ContextKeyUserID, uint(5))
		}
		ctx.Next()
	})

	handler := NewGroupHandler(svc, &fakeUserService{})
	router.GET("/groups/:groupID", handler.HandleGetGroup)
	router.POST("/groups/:groupID/join", handler.HandleJoinGroup)
	router.POST("/groups/:groupID/leave", handler.HandleLeaveGroup)

	return router
}

func TestHandleJoinGroup_Unauthenticated(t *testing.T) {
	router := newGroupTestRouter(&fakeGroupService{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/groups/1/join", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleJoinGroup_SecretGroup(t *testing.T) {
	svc := &fakeGroupService{
		joinGroupFunc: func(_ context.Context, _, _ uint) (domain.Group, error) {
			return domain.Group{}, service.ErrCannotJoinSecretGroup
		},
	}
	router := newGroupTestRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/groups/1/join", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleJoinGroup_AlreadyMember(t *testing.T) {
	svc := &fakeGroupService{
		joinGroupFunc: func(_ context.Context, _, _ uint) (domain.Group, error) {
			return domain.Group{}, service.ErrAlreadyGroupMember
		},
	}
	router := newGroupTestRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/groups/1/join", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLeaveGroup_SoleAdmin(t *testing.T) {
	svc := &fakeGroupService{
		leaveGroupFunc: func(_ context.Context, _, _ uint) error {
			return service.ErrSoleAdmin
		},
	}
	router := newGroupTestRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/groups/1/leave", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetGroup_BadID(t *testing.T) {
	router := newGroupTestRouter(&fakeGroupService{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/groups/zero", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetGroup_NotFound(t *testing.T) {
	svc := &fakeGroupService{
		getGroupFunc: func(_ context.Context, _, _ uint) (domain.GroupDetail, error) {
			return domain.GroupDetail{}, service.ErrGroupNotFound
		},
	}
	router := newGroupTestRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/groups/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
