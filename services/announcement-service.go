package services

import (
	"sync"
	"time"

	"construction-tracker/backend/models"
	"construction-tracker/backend/utils"
)

// AnnouncementService keeps the bulletin list in process memory only; it is
// never written to the durable store and resets on restart.
type AnnouncementService struct {
	mu            sync.Mutex
	announcements []models.Announcement
}

func NewAnnouncementService() *AnnouncementService {
	return &AnnouncementService{announcements: DefaultAnnouncements()}
}

func (s *AnnouncementService) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Announcement(nil), s.announcements...)
}

// Create stamps the date itself with the current day; caller-supplied dates
// are ignored. New bulletins go to the head of the list.
func (s *AnnouncementService) Create(title, content, author string) models.Announcement {
	announcement := models.Announcement{
		ID:      utils.NewID(),
		Date:    today(),
		Title:   title,
		Content: content,
		Author:  author,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = append([]models.Announcement{announcement}, s.announcements...)
	return announcement
}

// Update replaces title, content and author and re-stamps the date to now.
func (s *AnnouncementService) Update(id, title, content, author string) (models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements[i].Title = title
			s.announcements[i].Content = content
			s.announcements[i].Author = author
			s.announcements[i].Date = today()
			return s.announcements[i], nil
		}
	}
	return models.Announcement{}, ErrNotFound
}

func (s *AnnouncementService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.announcements[:0]
	for _, a := range s.announcements {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.announcements = kept
}

func today() string {
	return time.Now().Format(dateLayout)
}
