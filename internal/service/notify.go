package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultToastTTL is how long a notification stays visible before it
// dismisses itself.
const DefaultToastTTL = 3 * time.Second

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

type Toast struct {
	ID        string     `json:"id"`
	Level     ToastLevel `json:"level"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Notifier collects transient notifications for the presentation layer.
type Notifier interface {
	Success(message string)
	Error(message string)
	Active() []Toast
}

type toastHubImpl struct {
	mu     sync.Mutex
	active []Toast
	ttl    time.Duration
}

func NewToastHub(ttl time.Duration) Notifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &toastHubImpl{ttl: ttl}
}

func (h *toastHubImpl) Success(message string) {
	h.push(ToastSuccess, message)
}

func (h *toastHubImpl) Error(message string) {
	h.push(ToastError, message)
}

func (h *toastHubImpl) push(level ToastLevel, message string) {
	toast := Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	h.mu.Lock()
	h.active = append(h.active, toast)
	h.mu.Unlock()

	time.AfterFunc(h.ttl, func() {
		h.dismiss(toast.ID)
	})
}

func (h *toastHubImpl) dismiss(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, t := range h.active {
		if t.ID == id {
			h.active = append(h.active[:i], h.active[i+1:]...)
			return
		}
	}
}

func (h *toastHubImpl) Active() []Toast {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Toast, len(h.active))
	copy(out, h.active)
	return out
}
