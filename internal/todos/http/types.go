package http

type createReq struct {
	Title string `json:"title"`
	Done  *bool  `json:"done"`
}

type updateReq struct {
	Done *bool `json:"done"`
}
