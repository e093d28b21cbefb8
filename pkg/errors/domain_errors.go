package errors

var (
	// Domain errors — used in services/repositories
	ErrUsernameTaken      = AlreadyExists("username is already taken")
	ErrEmailTaken         = AlreadyExists("email is already registered")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidCredentials = Unauthorized("invalid username or password")
	ErrUsernameRequired   = InvalidArg("username cannot be empty")
	ErrEmailRequired      = InvalidArg("email cannot be empty")

	ErrChannelNameTaken = AlreadyExists("channel name is already taken")
	ErrChannelNotFound  = NotFound("channel not found")
	ErrAlreadyMember    = AlreadyExists("user is already a member of this channel")
	ErrInvalidTier      = InvalidArg("unknown permission tier")

	ErrInviteeNotFound = InvalidArg("invited user does not exist")

	ErrNotChannelMember = Forbidden("you are not a member of this channel")
	ErrAdminRequired    = Forbidden("admin permission required for this channel")
	ErrWriteForbidden   = Forbidden("write permission required for this channel")
	ErrNotMessageOwner  = Forbidden("you are not the owner of this message")

	ErrMessageNotFound = NotFound("message not found")
	ErrMessageEmpty    = InvalidArg("message text cannot be empty")
	ErrMessageTooLong  = InvalidArg("message text exceeds the maximum length")
)
