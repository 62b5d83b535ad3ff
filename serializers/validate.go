package serializers

import (
	"strings"
	"unicode/utf8"

	"github.com/ddebortoli/social-media-api/services"
)

// Boundary validation, run before input reaches the service layer. The
// service layer re-validates independently and is the authority.
// Length bounds count characters, not bytes.

func ValidateUsername(value string) (string, error) {
	username := strings.TrimSpace(value)
	if username == "" {
		return "", services.NewValidationError("Username cannot be empty")
	}
	length := utf8.RuneCountInString(username)
	if length < 3 {
		return "", services.NewValidationError("Username must be at least 3 characters long")
	}
	if length > 30 {
		return "", services.NewValidationError("Username cannot exceed 30 characters")
	}
	return username, nil
}

func ValidateEmail(value string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		return "", services.NewValidationError("Email cannot be empty")
	}
	return email, nil
}

func ValidatePostContent(value string) (string, error) {
	content := strings.TrimSpace(value)
	if content == "" {
		return "", services.NewValidationError("Post content cannot be empty")
	}
	if utf8.RuneCountInString(content) > services.MaxPostContentLength {
		return "", services.NewValidationError("Post content cannot exceed 5000 characters")
	}
	return content, nil
}

func ValidateCommentContent(value string) (string, error) {
	content := strings.TrimSpace(value)
	if content == "" {
		return "", services.NewValidationError("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > services.MaxCommentContentLength {
		return "", services.NewValidationError("Comment content cannot exceed 1000 characters")
	}
	return content, nil
}

// ValidateFollowRequest rejects self-follows and known duplicate edges at
// the boundary. The check is redundant with the service layer on purpose.
func ValidateFollowRequest(followerID, targetID uint, alreadyFollowing bool) error {
	if followerID == targetID {
		return services.NewValidationError("Users cannot follow themselves")
	}
	if alreadyFollowing {
		return services.NewValidationError("Already following this user")
	}
	return nil
}
