// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя (обёрнутые sentinel-ошибки),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: комментарии к переменным ошибок
// пакета service.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paygate/access-service/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ErrBadRequest — локальная ошибка HTTP-слоя: битый JSON, пустое тело.
var ErrBadRequest = errors.New("bad request")

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - неизвестная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг sentinel-ошибок сервиса -> HTTP/FE-код/сообщение.
// Таблица:
//   - ErrBadRequest / ErrMalformedEmail -> 400
//   - ErrUnauthorized / ErrEmailMismatch -> 401 (текст не уточняет причину)
//   - ErrEntitlementRevoked -> 403
//   - ErrTokenNotFound -> 404 (отсутствие и истечение неразличимы)
//   - ErrTokenConsumed -> 410
//   - ErrContentUnavailable -> 503
//   - прочее -> 500/internal
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrMalformedEmail):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "unauthorized"
	case errors.Is(err, service.ErrEmailMismatch):
		return http.StatusUnauthorized, "unauthorized", "unauthorized"
	case errors.Is(err, service.ErrEntitlementRevoked):
		return http.StatusForbidden, "forbidden", "access revoked"
	case errors.Is(err, service.ErrTokenNotFound):
		return http.StatusNotFound, "not_found", "token not found or expired"
	case errors.Is(err, service.ErrTokenConsumed):
		return http.StatusGone, "already_used", "token already used"
	case errors.Is(err, service.ErrContentUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
