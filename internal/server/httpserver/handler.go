package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/dmitrijs2005/hexplay/internal/server/services"
	"github.com/labstack/echo/v4"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}

// updateUserRequest carries the expected version and the fields to change.
// A token sent by the client is accepted and ignored.
type updateUserRequest struct {
	Version *int64  `json:"version" validate:"required,min=1"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Age     *int    `json:"age"`
	Token   *string `json:"token"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

func (s *HTTPServer) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := s.users.Create(c.Request().Context(), services.CreateUser{Name: req.Name, Email: req.Email, Age: req.Age})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *HTTPServer) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := s.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *HTTPServer) GetUserByToken(c echo.Context) error {
	user, err := s.users.GetByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *HTTPServer) GetUserByEmail(c echo.Context) error {
	user, err := s.users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /api/v1/users?start_id=&page_size=.
func (s *HTTPServer) ListUsers(c echo.Context) error {
	startID, err := queryInt(c, "start_id", 0)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", common.DefaultPageSize)
	if err != nil {
		return err
	}

	list, err := s.users.List(c.Request().Context(), int64(startID), pageSize)
	if err != nil {
		return err
	}

	resp := listUsersResponse{Users: make([]userResponse, 0, len(list))}
	for _, u := range list {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := services.UpdateUser{Name: req.Name, Email: req.Email, Age: req.Age}
	user, err := s.users.Update(c.Request().Context(), id, *req.Version, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/v1/users/:id?version=N and returns the
// removed user.
func (s *HTTPServer) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("version")
	if raw == "" {
		return common.NewValidationError("version", "is required")
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return common.NewValidationError("version", "must be an integer")
	}

	user, err := s.users.Delete(c.Request().Context(), id, version)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Health reports 200 while storage answers a ping and 503 otherwise.
func (s *HTTPServer) Health(c echo.Context) error {
	if s.health != nil {
		if err := s.health.Ping(c.Request().Context()); err != nil {
			s.logger.Warn(c.Request().Context(), "Storage ping failed", "error", err.Error())
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, common.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func toUserResponse(u *models.User) userResponse {
	out := userResponse{
		ID:        u.ID,
		Token:     u.Token.String(),
		Name:      u.Name,
		Email:     u.Email.String(),
		Version:   u.Version,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Age != nil {
		a := int(*u.Age)
		out.Age = &a
	}
	return out
}
