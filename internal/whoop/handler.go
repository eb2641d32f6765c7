package whoop

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/2beens/runintel/internal/telemetry/tracing"
	"github.com/2beens/runintel/pkg"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type Handler struct {
	oauthConfig        *oauth2.Config
	tokens             *TokenSource
	client             *Client
	refresher          *Refresher
	randStateGenerator func() string

	// guards state, the authorize redirect and the callback can overlap
	stateMutex sync.Mutex
	state      string
}

func NewHandler(
	oauthConfig *oauth2.Config,
	tokens *TokenSource,
	client *Client,
	refresher *Refresher,
	randStateGenerator func() string,
) *Handler {
	return &Handler{
		oauthConfig:        oauthConfig,
		tokens:             tokens,
		client:             client,
		refresher:          refresher,
		randStateGenerator: randStateGenerator,
	}
}

func GenerateStateString() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

// Authenticate starts the oauth2 dance, redirecting the browser to whoop.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "whoop.handler.authenticate")
	defer span.End()

	h.stateMutex.Lock()
	h.state = h.randStateGenerator()
	state := h.state
	h.stateMutex.Unlock()

	redirectURL := h.oauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// AuthRedirect handles the redirect back from whoop, exchanging the
// authorization code for a token.
func (h *Handler) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "whoop.handler.authRedirect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	h.stateMutex.Lock()
	expectedState := h.state
	h.stateMutex.Unlock()

	if st := r.FormValue("state"); st != expectedState || expectedState == "" {
		http.Error(w, "state mismatch", http.StatusForbidden)
		log.Errorf("whoop auth redirect, state mismatch: %s != %s", st, expectedState)
		return
	}

	code := r.FormValue("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		http.Error(w, "failed to get token", http.StatusForbidden)
		log.Errorf("whoop auth redirect, exchange code: %s", err)
		return
	}

	if err = h.tokens.SetToken(ctx, token); err != nil {
		http.Error(w, "failed to store token", http.StatusInternalServerError)
		log.Errorf("whoop auth redirect, store token: %s", err)
		return
	}

	// redirect to the main page
	http.Redirect(w, r, "/", http.StatusFound)

	// let the request finish, and check the connection in a new goroutine
	go func() {
		var err error
		innerCtx, innerSpan := tracing.GlobalTracer.Start(
			context.WithoutCancel(ctx),
			"whoop.handler.authRedirect.checkProfile",
		)
		defer func() {
			tracing.EndSpanWithErrCheck(innerSpan, err)
		}()

		profile, err := h.client.Profile(innerCtx)
		if err != nil {
			log.Errorf("whoop connected, but profile check failed: %s", err)
			return
		}
		log.Debugf("whoop connected as: %s %s", profile.FirstName, profile.LastName)
	}()
}

type RefresherStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) GetRefresherStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "whoop.handler.getRefresherStatus")
	defer span.End()

	pkg.SendJsonResponse(w, http.StatusOK, RefresherStatusResponse{Status: h.refresher.Status()})
}

func (h *Handler) StartRefresher(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "whoop.handler.startRefresher")
	defer span.End()

	h.refresher.Start()
	pkg.SendJsonResponse(w, http.StatusOK, RefresherStatusResponse{Status: "started"})
}

func (h *Handler) StopRefresher(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "whoop.handler.stopRefresher")
	defer span.End()

	h.refresher.Stop()
	pkg.SendJsonResponse(w, http.StatusOK, RefresherStatusResponse{Status: "stopped"})
}
