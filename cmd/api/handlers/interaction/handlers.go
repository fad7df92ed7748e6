package handlers

type CreateCommentParam struct {
	Content string `form:"content" json:"content"`
}

type ListCommentParam struct {
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}

type UpdateCommentParam struct {
	Content string `form:"content" json:"content"`
}
