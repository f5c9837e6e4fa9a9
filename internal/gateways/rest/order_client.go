package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	gateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/models"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

const maxErrorBody = 512

var _ gateway.OrderAPI = (*OrderClient)(nil)

type OrderClient struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	log        *logrus.Logger
}

func NewOrderClient(baseURL string, httpClient *http.Client, validate *validator.Validate, log *logrus.Logger) (*OrderClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid order api base url %q", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OrderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		validate:   validate,
		log:        log,
	}, nil
}

func (c *OrderClient) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID))
	if err != nil {
		return nil, err
	}

	logger := c.log.WithFields(logrus.Fields{"order_id": orderID, "request_id": gateway.RequestID(ctx)})
	logger.Debug("OrderClient: GET order")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("OrderClient: GET order transport failure")
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		logger.WithField("status_code", resp.StatusCode).Warn("OrderClient: GET order rejected")
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		logger.Info("OrderClient: order api answered without an order")
		return nil, nil
	}

	var payload models.OrderRes
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidOrderPayload, err.Error())
	}

	if c.validate != nil {
		if err := c.validate.Struct(payload); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidOrderPayload, err.Error())
		}
	}

	return payload.ToEntity(), nil
}

func (c *OrderClient) CancelOrder(ctx context.Context, orderID string) error {
	req, err := c.newRequest(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(orderID)+"/cancel")
	if err != nil {
		return err
	}

	logger := c.log.WithFields(logrus.Fields{"order_id": orderID, "request_id": gateway.RequestID(ctx)})
	logger.Info("OrderClient: PATCH cancel order")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("OrderClient: cancel transport failure")
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		logger.WithField("status_code", resp.StatusCode).Warn("OrderClient: cancel rejected")
		return err
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *OrderClient) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}

	req.Header.Set("Accept", "application/json")
	if token := gateway.BearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := gateway.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	return req, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	backendMsg := strings.TrimSpace(string(msg))
	if backendMsg == "" {
		backendMsg = resp.Status
	}

	return &StatusError{Code: resp.StatusCode, Message: backendMsg}
}

// StatusError is a non-2xx answer from the order API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", apperrors.ErrUpstreamStatus, e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	return apperrors.ErrUpstreamStatus
}
