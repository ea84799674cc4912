package store

// Secure store keys. They are part of the on-device format.
const (
	KeyCredentialPIN              = "credential.pin"
	KeyCredentialUsername         = "credential.username"
	KeyCredentialSecurityQuestion = "credential.securityQuestion"
	KeyCredentialSecurityAnswer   = "credential.securityAnswer"
	KeyNotes                      = "notes"
)

// CredentialKeys lists every key holding a part of the credential record.
var CredentialKeys = []string{
	KeyCredentialPIN,
	KeyCredentialUsername,
	KeyCredentialSecurityQuestion,
	KeyCredentialSecurityAnswer,
}
