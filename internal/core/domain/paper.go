package domain

// Paper is a submission: metadata plus a reference to the stored file.
type Paper struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	FilePath    string   `json:"file_path"`
	UserID      int64    `json:"user_id"`
}

// OwnedBy reports whether userID owns the paper.
func (p *Paper) OwnedBy(userID int64) bool {
	return p.UserID == userID
}
