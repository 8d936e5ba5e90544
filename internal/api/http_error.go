package api

// FieldError 單一欄位驗證失敗
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Rule    string `json:"rule" example:"taken"`
	Message string `json:"message" example:"email has already been taken"`
}

// HTTPError 全域錯誤響應模型
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message"`
	// errors 欄位錯誤，只在驗證失敗時出現
	Errors []FieldError `json:"errors,omitempty"`
}
