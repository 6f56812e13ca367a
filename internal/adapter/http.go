package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HTTPConfig points the adapter at a server.
type HTTPConfig struct {
	// Address is "host:port" or a full base URL.
	Address        string
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	login    string
	password string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It returns an error if cfg.Address is empty or cannot be
// parsed as a URL.
func NewHTTPServerAdapter(cfg HTTPConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetCredentials(login, password string) {
	h.login = strings.TrimSpace(login)
	h.password = password
}

func (h *httpServerAdapter) ListBooks(ctx context.Context) ([]models.Book, error) {
	var collection models.BookCollection
	if err := h.get(ctx, "/books", nil, &collection); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return collection.Books, nil
}

func (h *httpServerAdapter) GetBook(ctx context.Context, id int64) (models.Book, error) {
	var book models.Book
	if err := h.get(ctx, bookPath(id), nil, &book); err != nil {
		return models.Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return book, nil
}

func (h *httpServerAdapter) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	var created models.Book
	if err := h.send(ctx, resty.MethodPost, "/books", book, &created); err != nil {
		return models.Book{}, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) ReplaceBook(ctx context.Context, id int64, book models.Book) (models.Book, error) {
	var replaced models.Book
	if err := h.send(ctx, resty.MethodPut, bookPath(id), book, &replaced); err != nil {
		return models.Book{}, fmt.Errorf("replace book %d: %w", id, err)
	}
	return replaced, nil
}

func (h *httpServerAdapter) PatchBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error) {
	var patched models.Book
	if err := h.send(ctx, resty.MethodPatch, bookPath(id), patch, &patched); err != nil {
		return models.Book{}, fmt.Errorf("patch book %d: %w", id, err)
	}
	return patched, nil
}

func (h *httpServerAdapter) DeleteBook(ctx context.Context, id int64) error {
	if err := h.send(ctx, resty.MethodDelete, bookPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

func (h *httpServerAdapter) SearchBooks(ctx context.Context, name string, params map[string]string) ([]models.Book, error) {
	var collection models.BookCollection
	if err := h.get(ctx, "/books/search/"+url.PathEscape(name), params, &collection); err != nil {
		return nil, fmt.Errorf("search books %s: %w", name, err)
	}
	return collection.Books, nil
}

func (h *httpServerAdapter) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var collection models.AuthorCollection
	if err := h.get(ctx, "/authors", nil, &collection); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return collection.Authors, nil
}

func (h *httpServerAdapter) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	var author models.Author
	if err := h.get(ctx, authorPath(id), nil, &author); err != nil {
		return models.Author{}, fmt.Errorf("get author %d: %w", id, err)
	}
	return author, nil
}

func (h *httpServerAdapter) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	var created models.Author
	if err := h.send(ctx, resty.MethodPost, "/authors", author, &created); err != nil {
		return models.Author{}, fmt.Errorf("create author: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) ReplaceAuthor(ctx context.Context, id int64, author models.Author) (models.Author, error) {
	var replaced models.Author
	if err := h.send(ctx, resty.MethodPut, authorPath(id), author, &replaced); err != nil {
		return models.Author{}, fmt.Errorf("replace author %d: %w", id, err)
	}
	return replaced, nil
}

func (h *httpServerAdapter) PatchAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error) {
	var patched models.Author
	if err := h.send(ctx, resty.MethodPatch, authorPath(id), patch, &patched); err != nil {
		return models.Author{}, fmt.Errorf("patch author %d: %w", id, err)
	}
	return patched, nil
}

func (h *httpServerAdapter) DeleteAuthor(ctx context.Context, id int64) error {
	if err := h.send(ctx, resty.MethodDelete, authorPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	return nil
}

func (h *httpServerAdapter) SearchAuthors(ctx context.Context, name string, params map[string]string) ([]models.Author, error) {
	var collection models.AuthorCollection
	if err := h.get(ctx, "/authors/search/"+url.PathEscape(name), params, &collection); err != nil {
		return nil, fmt.Errorf("search authors %s: %w", name, err)
	}
	return collection.Authors, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, params map[string]string, result any) error {
	resp, err := h.request(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	return mapHTTPError(resp)
}

// send issues a write. A nil body sends none; a nil result ignores the
// response body.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, body, result any) error {
	req := h.request(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpServerAdapter.send").Str("method", method).Str("path", path).Msg("request rejected")
		return err
	}
	return nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.login != "" {
		req.SetBasicAuth(h.login, h.password)
	}
	return req
}

func bookPath(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}

func authorPath(id int64) string {
	return "/authors/" + strconv.FormatInt(id, 10)
}
