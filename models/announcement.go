package models

// Announcement is a bulletin entry. Date is stamped by the store at write
// time; the list lives only in process memory.
type Announcement struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}
