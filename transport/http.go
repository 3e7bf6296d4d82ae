package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/taskora/client-go/application/catalog"
	"github.com/taskora/client-go/application/chat"
	"github.com/taskora/client-go/application/session"
	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
	utilsContext "github.com/taskora/client-go/utils/context"
	"github.com/taskora/client-go/utils/errors"
	validatorx "github.com/taskora/client-go/utils/validator"
)

type RestHandler struct {
	SessionApp session.SessionApp
	ChatApp    chat.ChatApp
	CatalogApp catalog.CatalogApp
}

func NewTransport(sessionApp session.SessionApp, chatApp chat.ChatApp, catalogApp catalog.CatalogApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		SessionApp: sessionApp,
		ChatApp:    chatApp,
		CatalogApp: catalogApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/catalog/services", rh.ListServices).Methods(http.MethodGet)
	router.HandleFunc("/catalog/categories", rh.ListCategories).Methods(http.MethodGet)
	router.HandleFunc("/catalog/regions", rh.ListRegions).Methods(http.MethodGet)

	// Authenticated routes, any role
	me := router.PathPrefix("/me").Subrouter()
	me.Use(GuardMiddleware(sessionApp))
	me.HandleFunc("/session", rh.Session).Methods(http.MethodGet)
	me.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	chatRoutes := router.PathPrefix("/chat").Subrouter()
	chatRoutes.Use(GuardMiddleware(sessionApp))
	chatRoutes.HandleFunc("/conversations", rh.Conversations).Methods(http.MethodGet)
	chatRoutes.HandleFunc("/conversations/start", rh.StartConversation).Methods(http.MethodPost)
	chatRoutes.HandleFunc("/conversations/{id}/read", rh.MarkConversationRead).Methods(http.MethodPatch)
	chatRoutes.HandleFunc("/messages/{counterpartID}", rh.Messages).Methods(http.MethodGet)
	chatRoutes.HandleFunc("/messages/send", rh.SendMessage).Methods(http.MethodPost)

	// Provider-only routes
	provider := router.PathPrefix("/provider").Subrouter()
	provider.Use(GuardMiddleware(sessionApp, constant.RoleProvider))
	provider.HandleFunc("/profile", rh.Profile).Methods(http.MethodGet)
	provider.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)

	router.Use(LoggingMiddleware())

	return router
}

// Login handler
// @Summary Log in
// @Description Authenticate against the marketplace backend and open the local session
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.SessionState
// @Failure 401 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SessionApp.Login(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	// the push transport outlives this request
	go s.ChatApp.Connect(context.Background())

	writeSuccess(w, s.SessionApp.Snapshot())
}

// Register handler
// @Summary Register user
// @Description Create a new account on the marketplace backend
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.Identity
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity, err := s.SessionApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, identity)
}

// Session handler returns the snapshot the guard evaluated for this request.
func (s *RestHandler) Session(w http.ResponseWriter, r *http.Request) {
	state, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	writeSuccess(w, state)
}

// Logout handler
// @Summary Log out
// @Description Tear down the chat transport and clear the persisted session
// @Tags Session
// @Produce json
// @Success 200 {object} model.SessionState
// @Router /me/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s.ChatApp.Close()
	s.SessionApp.Logout(r.Context())
	writeSuccess(w, s.SessionApp.Snapshot())
}

// Profile handler returns the provider's profile state.
func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	s.SessionApp.CheckAndFetchProfile(r.Context())
	snap := s.SessionApp.Snapshot()
	writeSuccess(w, struct {
		Profile    *model.Profile `json:"profile"`
		HasProfile bool           `json:"has_profile"`
	}{snap.Profile, snap.HasProfile})
}

// UpdateProfile handler
// @Summary Upsert provider profile
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.CustomError
// @Router /provider/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		About string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SessionApp.UpdateProfile(r.Context(), req.About); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.SessionApp.Snapshot().Profile)
}

// Conversations handler lists the user's conversations.
func (s *RestHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	if err := s.ChatApp.FetchConversations(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.ChatApp.Snapshot().Conversations)
}

// StartConversation handler opens a conversation with another user.
func (s *RestHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	var req model.StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ChatApp.StartConversation(r.Context(), req.ReceiverID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.ChatApp.Snapshot().Conversations)
}

// Messages handler fetches the thread with the given counterpart.
func (s *RestHandler) Messages(w http.ResponseWriter, r *http.Request) {
	counterpartID, err := strconv.ParseUint(mux.Vars(r)["counterpartID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ChatApp.FetchMessages(r.Context(), counterpartID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.ChatApp.Snapshot().Messages)
}

// SendMessage handler
// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body model.SendMessageRequest true "Send Message Request"
// @Success 200 {array} model.Message
// @Failure 400 {object} errors.CustomError
// @Router /chat/messages/send [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ChatApp.SendMessage(r.Context(), req.To, req.Text); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.ChatApp.Snapshot().Messages)
}

// MarkConversationRead handler issues the read receipt for a conversation.
func (s *RestHandler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	conversationID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ChatApp.MarkConversationAsRead(r.Context(), conversationID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListServices handler serves the public service listing.
func (s *RestHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.CatalogApp.ListServices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, services)
}

// ListCategories handler serves the public category listing.
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.CatalogApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, categories)
}

// ListRegions handler serves the public region listing.
func (s *RestHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := s.CatalogApp.ListRegions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, regions)
}
