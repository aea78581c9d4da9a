package domain

// System parameter keys holding the Easy Delivery API access.
const (
	ParamAPIURL    = "easy_delivery.api_url"
	ParamAuthToken = "easy_delivery.auth_token"
)

// Credentials grant access to the Easy Delivery API.
type Credentials struct {
	APIURL    string
	AuthToken string
}

// Validate returns a ConfigurationError unless both fields are set.
func (c Credentials) Validate() error {
	if c.APIURL == "" || c.AuthToken == "" {
		return &ConfigurationError{Message: MissingCredentialsMessage}
	}
	return nil
}

// String hides the token so credentials can be logged safely.
func (c Credentials) String() string {
	token := ""
	if c.AuthToken != "" {
		token = "****"
	}
	return "Credentials{APIURL: " + c.APIURL + ", AuthToken: " + token + "}"
}
