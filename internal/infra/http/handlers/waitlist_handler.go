package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/napoleonai/waitlist-api/internal/infra/http/middleware"
	"github.com/napoleonai/waitlist-api/internal/usecase"
)

type WaitlistHandler struct {
	SignupUC    *usecase.SignupWaitlistUseCase
	StatsUC     *usecase.GetWaitlistStatsUseCase
	rateLimiter *RateLimiter
}

func NewWaitlistHandler(signupUC *usecase.SignupWaitlistUseCase, statsUC *usecase.GetWaitlistStatsUseCase) *WaitlistHandler {
	return &WaitlistHandler{
		SignupUC:    signupUC,
		StatsUC:     statsUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// signupResponse is the envelope of every POST /api/waitlist outcome.
type signupResponse struct {
	Success     bool                      `json:"success"`
	Data        *usecase.SignupData       `json:"data,omitempty"`
	Message     string                    `json:"message,omitempty"`
	Error       string                    `json:"error,omitempty"`
	Errors      map[string]string         `json:"errors,omitempty"`
	Validations []usecase.FieldValidation `json:"validations,omitempty"`
	Details     string                    `json:"details,omitempty"`
}

// HandleSignup is the waitlist signup endpoint (POST /api/waitlist).
func (h *WaitlistHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Last line of defense: a panic anywhere below becomes a generic 500
	// and an error event, never a stack trace in the response.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("waitlist signup panic: %v", rec)
			h.SignupUC.TrackError(ctx, "panic in signup handler")
			writeJSON(w, http.StatusInternalServerError, signupResponse{
				Success: false,
				Error:   "Internal server error",
				Message: "We apologize for the inconvenience. Please try again or contact our executive support team.",
			})
		}
	}()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, signupResponse{
			Success: false,
			Error:   "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.WaitlistSubmission
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, signupResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	output, err := h.SignupUC.Execute(ctx, input, ExtractRequestMeta(r))
	if err != nil {
		h.writeSignupError(w, ctx, err)
		return
	}

	middleware.RecordSignupAccepted(string(output.Data.Priority), string(output.Data.ExecutiveLevel))

	writeJSON(w, http.StatusOK, signupResponse{
		Success: true,
		Data:    output.Data,
		Message: output.Message,
	})
}

func (h *WaitlistHandler) writeSignupError(w http.ResponseWriter, ctx context.Context, err error) {
	if vErr, ok := usecase.AsValidationFailed(err); ok {
		for field := range vErr.Validation.Errors {
			middleware.RecordSignupRejected(field)
		}
		writeJSON(w, http.StatusBadRequest, signupResponse{
			Success:     false,
			Error:       "Validation failed",
			Errors:      vErr.Validation.Errors,
			Validations: vErr.Validation.Validations,
		})
		return
	}

	// Persistence and everything else: opaque 500, real cause stays in logs.
	log.Printf("waitlist signup failed: %v", err)
	h.SignupUC.TrackError(ctx, "signup persistence failure")
	writeJSON(w, http.StatusInternalServerError, signupResponse{
		Success: false,
		Error:   "Failed to add executive to waitlist",
		Details: "The waitlist service is temporarily unavailable. Please try again.",
	})
}

// HandleStats is the public counters endpoint (GET /api/waitlist).
func (h *WaitlistHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.StatsUC.Execute(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
	})
}

// RateLimiter is a windowed per-IP counter for the public endpoints.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
