package cinemaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// Client клиент для работы с cinema backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента cinema backend
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает учет исходов запросов
func (c *Client) WithMetrics(m MetricsRecorder) *Client {
	c.metrics = m
	return c
}

// Login получает токен по логину и паролю
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		if err == ErrUnauthorized {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidResponse)
	}

	return resp.Token, nil
}

// GetMe возвращает пользователя, которому принадлежит токен
func (c *Client) GetMe(ctx context.Context, token string) (*User, error) {
	var resp envelope[User]
	if err := c.do(ctx, "get_me", http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Logout завершает сессию на стороне backend
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, "logout", http.MethodGet, "/auth/logout", token, nil, nil)
}

// ListShowtimes получает снапшот сеансов
// includeUnreleased требует токен администратора
func (c *Client) ListShowtimes(ctx context.Context, token string, includeUnreleased bool) ([]domain.Showtime, error) {
	path := "/showtime"
	if includeUnreleased {
		path = "/showtime/unreleased"
	}

	var resp envelope[[]showtimeDTO]
	if err := c.do(ctx, "list_showtimes", http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	showtimes := make([]domain.Showtime, 0, len(resp.Data))
	for _, dto := range resp.Data {
		showtimes = append(showtimes, dto.toDomain())
	}

	return showtimes, nil
}

// ListMovies получает каталог фильмов
func (c *Client) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	var resp envelope[[]movieDTO]
	if err := c.do(ctx, "list_movies", http.MethodGet, "/movie", "", nil, &resp); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(resp.Data))
	for _, dto := range resp.Data {
		movies = append(movies, dto.toDomain())
	}

	return movies, nil
}

// GetMovie ищет фильм в каталоге по ID
func (c *Client) GetMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	movies, err := c.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range movies {
		if m.ID == movieID {
			movie := m
			return &movie, nil
		}
	}

	return nil, ErrMovieNotFound
}

// CreateShowtime создает сеанс (и повторы на следующие дни, если RepeatDays > 1)
func (c *Client) CreateShowtime(ctx context.Context, token string, draft domain.ShowtimeDraft) error {
	body := createShowtimeRequest{
		Movie:     draft.MovieID,
		Showtime:  draft.StartsAt,
		Theater:   draft.TheaterID,
		Repeat:    draft.RepeatDays,
		IsRelease: draft.IsReleased,
	}
	return c.do(ctx, "create_showtime", http.MethodPost, "/showtime", token, body, nil)
}

// SetShowtimeRelease меняет флаг публикации сеанса
func (c *Client) SetShowtimeRelease(ctx context.Context, token, showtimeID string, released bool) error {
	path := "/showtime/" + url.PathEscape(showtimeID)
	err := c.do(ctx, "update_showtime", http.MethodPut, path, token, updateReleaseRequest{IsRelease: released}, nil)
	if err == errNotFound {
		return ErrShowtimeNotFound
	}
	return err
}

// DeleteShowtime удаляет сеанс
func (c *Client) DeleteShowtime(ctx context.Context, token, showtimeID string) error {
	path := "/showtime/" + url.PathEscape(showtimeID)
	err := c.do(ctx, "delete_showtime", http.MethodDelete, path, token, nil, nil)
	if err == errNotFound {
		return ErrShowtimeNotFound
	}
	return err
}

// do выполняет запрос и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, path, token string, body interface{}, out interface{}) (err error) {
	defer func() {
		if c.metrics != nil {
			c.metrics.IncBackendRequest(operation, err)
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("cinemaapi: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		if operation == "login" {
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, string(body))
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return errNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
