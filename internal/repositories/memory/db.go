package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

// table is one keyed collection. Ids come from a counter that starts at 1
// and only moves forward.
type table[T any] struct {
	mutex  sync.RWMutex
	rows   map[uint]*T
	nextID uint
	stamp  func(row *T, id uint, now time.Time)
	now    func() time.Time
}

func newTable[T any](stamp func(row *T, id uint, now time.Time)) *table[T] {
	return &table[T]{
		rows:   make(map[uint]*T),
		nextID: 1,
		stamp:  stamp,
		now:    time.Now,
	}
}

func (t *table[T]) GetByID(_ context.Context, id uint) (*T, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (t *table[T]) Create(_ context.Context, record *T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.insertLocked(record)
	return nil
}

// insertLocked requires t.mutex held for writing.
func (t *table[T]) insertLocked(record *T) {
	id := t.nextID
	t.nextID++
	t.stamp(record, id, t.now().UTC())

	cp := *record
	t.rows[id] = &cp
}

func (t *table[T]) List(_ context.Context) ([]*T, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.listLocked(), nil
}

func (t *table[T]) listLocked() []*T {
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		cp := *t.rows[id]
		out = append(out, &cp)
	}
	return out
}

// DB is the process-local record store. Nothing is persisted.
type DB struct {
	user            *userRepository
	subject         *table[models.Subject]
	lecture         *table[models.Lecture]
	assignment      *table[models.Assignment]
	submission      *table[models.Submission]
	document        *table[models.Document]
	studentProgress *table[models.StudentProgress]
	aiContent       *table[models.AIContent]
	chatMessage     *table[models.ChatMessage]
}

// Open returns an empty store.
func Open() *DB {
	return &DB{
		user: &userRepository{table: newTable(func(u *models.User, id uint, now time.Time) {
			u.ID, u.CreatedAt = id, now
		})},
		subject: newTable(func(s *models.Subject, id uint, now time.Time) {
			s.ID, s.CreatedAt = id, now
		}),
		lecture: newTable(func(l *models.Lecture, id uint, now time.Time) {
			l.ID, l.CreatedAt = id, now
		}),
		assignment: newTable(func(a *models.Assignment, id uint, now time.Time) {
			a.ID, a.CreatedAt = id, now
		}),
		submission: newTable(func(s *models.Submission, id uint, now time.Time) {
			s.ID = id
			if s.SubmittedAt.IsZero() {
				s.SubmittedAt = now
			}
		}),
		document: newTable(func(d *models.Document, id uint, now time.Time) {
			d.ID = id
			if d.UploadedAt.IsZero() {
				d.UploadedAt = now
			}
		}),
		studentProgress: newTable(func(p *models.StudentProgress, id uint, now time.Time) {
			p.ID, p.UpdatedAt = id, now
		}),
		aiContent: newTable(func(c *models.AIContent, id uint, now time.Time) {
			c.ID, c.CreatedAt = id, now
		}),
		chatMessage: newTable(func(m *models.ChatMessage, id uint, now time.Time) {
			m.ID, m.CreatedAt = id, now
		}),
	}
}

func (db *DB) User() repositories.UserRepository { return db.user }

func (db *DB) Subject() repositories.EntityRepository[models.Subject] { return db.subject }

func (db *DB) Lecture() repositories.EntityRepository[models.Lecture] { return db.lecture }

func (db *DB) Assignment() repositories.EntityRepository[models.Assignment] { return db.assignment }

func (db *DB) Submission() repositories.EntityRepository[models.Submission] { return db.submission }

func (db *DB) Document() repositories.EntityRepository[models.Document] { return db.document }

func (db *DB) StudentProgress() repositories.EntityRepository[models.StudentProgress] {
	return db.studentProgress
}

func (db *DB) AIContent() repositories.EntityRepository[models.AIContent] { return db.aiContent }

func (db *DB) ChatMessage() repositories.EntityRepository[models.ChatMessage] {
	return db.chatMessage
}

func (db *DB) Ping(context.Context) error { return nil }

func (db *DB) Close() error { return nil }
