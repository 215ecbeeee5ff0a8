package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories mirroring the database constraints
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) conflicts(u *domain.User) bool {
	for id, existing := range r.users {
		if id == u.ID {
			continue
		}
		if existing.Username == u.Username || existing.Email == u.Email {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.conflicts(user) {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if r.conflicts(user) {
		return domain.ErrUserExists
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

type stubPaperRepo struct {
	users     *stubUserRepo
	papers    map[int64]*domain.Paper
	nextID    int64
	createErr error
}

func newStubPaperRepo(users *stubUserRepo) *stubPaperRepo {
	return &stubPaperRepo{users: users, papers: make(map[int64]*domain.Paper)}
}

func (r *stubPaperRepo) Create(_ context.Context, p *domain.Paper) (*domain.Paper, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.users.users[p.UserID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.nextID++
	clone := *p
	clone.ID = r.nextID
	stored := clone
	r.papers[clone.ID] = &stored
	return &clone, nil
}

func (r *stubPaperRepo) FindByID(_ context.Context, id int64) (*domain.Paper, error) {
	p, ok := r.papers[id]
	if !ok {
		return nil, domain.ErrPaperNotFound
	}
	clone := *p
	return &clone, nil
}

// List applies the same filters the SQL repository uses.
func (r *stubPaperRepo) List(_ context.Context, f ports.PaperFilter) ([]*domain.Paper, error) {
	var out []*domain.Paper
	for _, p := range r.papers {
		if f.OwnerID != 0 && p.UserID != f.OwnerID {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search)) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPaperRepo) Update(_ context.Context, p *domain.Paper) error {
	if _, ok := r.papers[p.ID]; !ok {
		return domain.ErrPaperNotFound
	}
	clone := *p
	r.papers[p.ID] = &clone
	return nil
}

func (r *stubPaperRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.papers[id]; !ok {
		return domain.ErrPaperNotFound
	}
	delete(r.papers, id)
	return nil
}

type stubChatRepo struct {
	users    *stubUserRepo
	messages []*domain.ChatMessage
}

func newStubChatRepo(users *stubUserRepo) *stubChatRepo {
	return &stubChatRepo{users: users}
}

func (r *stubChatRepo) Create(_ context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	if _, ok := r.users.users[m.SenderID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	if _, ok := r.users.users[m.RecipientID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *m
	clone.ID = int64(len(r.messages) + 1)
	stored := clone
	r.messages = append(r.messages, &stored)
	return &clone, nil
}

func (r *stubChatRepo) Conversation(_ context.Context, a, b int64) ([]*domain.ChatMessage, error) {
	var out []*domain.ChatMessage
	for _, m := range r.messages {
		if m.Involves(a, b) {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubChatRepo) Partners(_ context.Context, userID int64) ([]*domain.User, error) {
	seen := make(map[int64]bool)
	var out []*domain.User
	for _, m := range r.messages {
		var other int64
		switch userID {
		case m.SenderID:
			other = m.RecipientID
		case m.RecipientID:
			other = m.SenderID
		default:
			continue
		}
		if other == userID || seen[other] {
			continue
		}
		seen[other] = true
		out = append(out, cloneUser(r.users.users[other]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// ---------------------------------------------------------------------------
// File store and notification log stubs
// ---------------------------------------------------------------------------

type stubFileStore struct {
	files    map[string][]byte
	storeErr error
	seq      int
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{files: make(map[string][]byte)}
}

func (s *stubFileStore) Store(_ context.Context, filename string, content io.Reader) (string, error) {
	if s.storeErr != nil {
		return "", s.storeErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", err
	}
	s.seq++
	path := fmt.Sprintf("%d_%s", s.seq, filename)
	s.files[path] = buf.Bytes()
	return path, nil
}

func (s *stubFileStore) Remove(_ context.Context, path string) error {
	if _, ok := s.files[path]; !ok {
		return errors.New("no such file")
	}
	delete(s.files, path)
	return nil
}

type stubNotes struct {
	mu      sync.Mutex
	entries []string
}

func (n *stubNotes) Append(_ context.Context, msg string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, msg)
	return nil
}

func (n *stubNotes) List(context.Context) ([]domain.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.Notification, len(n.entries))
	for i, e := range n.entries {
		out[i] = domain.Notification{Message: e}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	users  *stubUserRepo
	papers *stubPaperRepo
	chats  *stubChatRepo
	files  *stubFileStore
	notes  *stubNotes
	creds  Credentials

	auth    *AuthService
	profile *ProfileService
	paper   *PaperService
	chat    *ChatService
}

func newFixture() *fixture {
	f := &fixture{
		users: newStubUserRepo(),
		files: newStubFileStore(),
		notes: &stubNotes{},
		creds: NewCredentials(bcrypt.MinCost),
	}
	f.papers = newStubPaperRepo(f.users)
	f.chats = newStubChatRepo(f.users)

	log := zerolog.Nop()
	f.auth = NewAuthService(f.users, f.notes, f.creds, log)
	f.profile = NewProfileService(f.users, f.creds, log)
	f.paper = NewPaperService(f.papers, f.users, f.files, f.notes, log)
	f.chat = NewChatService(f.chats, f.users, log)
	return f
}

// register creates a user whose password equals its username.
func (f *fixture) register(username string) *domain.User {
	u, err := f.auth.Register(context.Background(), ports.RegisterInput{
		FirstName:       strings.ToUpper(username[:1]) + username[1:],
		LastName:        "Tester",
		Username:        username,
		Email:           username + "@x.com",
		Password:        username,
		ConfirmPassword: username,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func (f *fixture) upload(ownerID int64, title string, category domain.Category) *domain.Paper {
	p, err := f.paper.Upload(context.Background(), ownerID, ports.UploadPaperInput{
		Title:       title,
		Description: "d",
		Category:    string(category),
		Filename:    "f.pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	})
	if err != nil {
		panic(err)
	}
	return p
}
