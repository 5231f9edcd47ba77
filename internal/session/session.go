package session

import (
	"sync"
	"time"

	"licensing-subscription-panel/internal/model"
	"licensing-subscription-panel/internal/page"

	"github.com/google/uuid"
)

// Session 单个会话拥有的全部可变状态
// 许可数据与页面位置都只存在于进程内，会话丢失后以默认值重建
type Session struct {
	ID        string
	State     *model.LicensingState
	Router    *page.Router
	CreatedAt time.Time
}

// Store 进程内会话仓库
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Get 按 ID 查找会话
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Create 新建会话并注册
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		State:     model.NewLicensingState(),
		Router:    page.NewRouter(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// GetOrCreate 按 ID 取回会话，ID 为空或不存在时新建
// 第二个返回值表示是否为新建会话
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

// Count 当前会话数量
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
