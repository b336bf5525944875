// internal/app/features/notes/notesops.go
package notes

import (
	"context"
	"errors"
	"net/http"
	"strings"

	notestore "github.com/academicpro/academicpro/internal/app/store/notes"
	"github.com/academicpro/academicpro/internal/app/system/authz"
	"github.com/academicpro/academicpro/internal/app/system/htmlsanitize"
	"github.com/academicpro/academicpro/internal/app/system/httpjson"
	"github.com/academicpro/academicpro/internal/app/system/status"
	"github.com/academicpro/academicpro/internal/app/system/timeouts"
	"github.com/academicpro/academicpro/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeNotesList handles GET /api/notes. Only the caller's own notes
// are returned, newest first.
func (h *Handler) ServeNotesList(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	list, err := store.ListByOwner(ctx, uid)
	if err != nil {
		httpjson.ServerError(w, h.Log, "list notes", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, list)
}

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// HandleCreateNote handles POST /api/notes.
func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req createNoteRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	req.Title = strings.TrimSpace(htmlsanitize.Sanitize(req.Title))
	req.Content = strings.TrimSpace(htmlsanitize.Sanitize(req.Content))
	if req.Title == "" || req.Content == "" {
		httpjson.BadRequest(w, "Title and content are required")
		return
	}
	if req.Status != "" && !status.IsValid(req.Status) {
		httpjson.BadRequest(w, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	created, err := store.Create(ctx, models.Note{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
		UserID:  uid,
	})
	if err != nil {
		httpjson.ServerError(w, h.Log, "create note", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, created)
}

// loadOwnedNote resolves {id}, loads the note, and enforces ownership.
// Writes the error response itself and returns nil when the caller
// should bail out.
func (h *Handler) loadOwnedNote(w http.ResponseWriter, r *http.Request, uid primitive.ObjectID) *models.Note {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "Bad note id")
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := notestore.New(h.DB)
	note, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Note not found")
			return nil
		}
		httpjson.ServerError(w, h.Log, "load note", err)
		return nil
	}
	if note.UserID != uid {
		httpjson.Forbidden(w, "You do not have access to this note")
		return nil
	}
	return note
}

// ServeNote handles GET /api/notes/{id}.
func (h *Handler) ServeNote(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	note := h.loadOwnedNote(w, r, uid)
	if note == nil {
		return
	}
	httpjson.Respond(w, http.StatusOK, note)
}

type updateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// HandleUpdateNote handles PUT /api/notes/{id}. Only the fields present
// in the body change.
func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	var req updateNoteRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if req.Status != "" && !status.IsValid(req.Status) {
		httpjson.BadRequest(w, "Invalid status")
		return
	}

	note := h.loadOwnedNote(w, r, uid)
	if note == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	updated, err := store.Update(ctx, note.ID, uid, notestore.Update{
		Title:   strings.TrimSpace(htmlsanitize.Sanitize(req.Title)),
		Content: strings.TrimSpace(htmlsanitize.Sanitize(req.Content)),
		Status:  req.Status,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Note not found")
			return
		}
		httpjson.ServerError(w, h.Log, "update note", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}

// HandleDeleteNote handles DELETE /api/notes/{id}.
func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Unauthorized(w, "Not authorized")
		return
	}

	note := h.loadOwnedNote(w, r, uid)
	if note == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notestore.New(h.DB)
	if err := store.Delete(ctx, note.ID, uid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Note not found")
			return
		}
		httpjson.ServerError(w, h.Log, "delete note", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
