package handlers

// messages
const (
	MsgUnauthorized = "Unauthorized"
)

// MsgNoFileUploaded message for a file-requiring endpoint called without its file
func MsgNoFileUploaded(field string) string {
	return "No " + field + " file uploaded"
}
