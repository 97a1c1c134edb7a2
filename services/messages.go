package services

const (
	msgNotAuthenticated    = "User is not authenticated."
	msgFaqForbidden        = "You are not authorized to add details for other user."
	msgUserUpdateForbidden = "You are not authorized to update this user's details."
	msgUserDeleteForbidden = "You are not authorized to delete this user's account."
	msgUserNotFound        = "User not found."
	msgCategoryNotFound    = "Category not found."
	msgTagNotFound         = "Tag not found."
	msgTagsNotFound        = "One or more tags not found."
	msgFaqNotFound         = "Faq not found."
	msgRatingAlreadyExists = "You have already submitted this rating."
	msgUserExists          = "A user with the same email or username already exists."
	msgInvalidCredentials  = "Invalid username or password."
	msgPasswordTooShort    = "Password must be at least 6 characters long."
	msgInvalidEmail        = "Invalid email format."
	msgUsernameEmpty       = "Username cannot be empty."
	msgUsernameTooLong     = "UserName cannot exceed 50 characters."
	msgQuestionEmpty       = "Question cannot be empty."
	msgAnswerEmpty         = "Answer cannot be empty."
	msgNameEmpty           = "Name cannot be empty."
	msgCategoryExistsFmt   = "Category with the name '%s' already exists."
	msgCategoryConflictFmt = "Another category with the name '%s' already exists."
	msgTagExistsFmt        = "Tag with the name '%s' already exists."
	msgTagConflictFmt      = "Another tag with the name '%s' already exists."
	msgCategoryInUseFmt    = "Category '%s' still has %d active faq(s)."
	msgAIUnavailable       = "FAQ not found or AI service failed to provide an answer."
	msgPasswordSaltMissing = "Password salt is not configured."
	msgJWTSecretMissing    = "JWT secret is not configured."
)
