package handlers

type PublishParam struct {
	Title       string  `form:"title"`
	Description string  `form:"description"`
	Tags        string  `form:"tags"`
	Duration    float64 `form:"duration"`
}

type ListVideoParam struct {
	Keyword   string `form:"keyword" query:"keyword"`
	UserId    int64  `form:"user_id" query:"user_id"`
	SortBy    string `form:"sort_by" query:"sort_by"`
	SortOrder string `form:"sort_order" query:"sort_order"`
	PageNum   int64  `form:"page_num" query:"page_num"`
	PageSize  int64  `form:"page_size" query:"page_size"`
}

type UpdateVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}
