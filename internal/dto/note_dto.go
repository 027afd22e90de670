package dto

type NoteResponse struct {
	Id      int64  `json:"id"`
	Content string `json:"content"`
}

type CreateNoteRequest struct {
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Content string `json:"content"`
}
