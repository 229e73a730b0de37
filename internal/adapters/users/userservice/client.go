package userservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/platform/httpclient"

	"github.com/google/uuid"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client valida usuarios contra GET /users/{id} de user-service.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.UserAgent = "pet-service"
	return &Client{http: hc}, nil
}

type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LookupUser: 404 => ErrUserNotFound; cualquier otra falla (timeout, conexión,
// 5xx, respuesta inesperada) => ErrUpstreamUnavailable envolviendo la causa.
//
// Los ids los asigna user-service (uuid). Un id que no parsea no puede existir
// y no se consulta: evita que "me" u otras rutas de /users respondan por él.
func (c *Client) LookupUser(ctx context.Context, userID string) (adoptions.UserRef, error) {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return adoptions.UserRef{}, adoptions.ErrUserNotFound
	}
	userID = id.String()

	var dto userDTO
	err = c.http.GetJSON(ctx, "/users/"+url.PathEscape(userID), &dto)
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return adoptions.UserRef{}, adoptions.ErrUserNotFound
		}
		return adoptions.UserRef{}, fmt.Errorf("%w: %v", adoptions.ErrUpstreamUnavailable, err)
	}
	if dto.ID == "" {
		return adoptions.UserRef{}, fmt.Errorf("%w: empty user payload", adoptions.ErrUpstreamUnavailable)
	}

	return adoptions.UserRef{ID: dto.ID, Username: dto.Username}, nil
}
