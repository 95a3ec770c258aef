package authgate

import "errors"

var (
	// ErrInvalidCredentials is an exported constant or variable used by the session engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidTwoFactorCode is an exported constant or variable used by the session engine.
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")
	// ErrConcurrentOperation is an exported constant or variable used by the session engine.
	ErrConcurrentOperation = errors.New("concurrent session operation")
	// ErrInvalidTransition is an exported constant or variable used by the session engine.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrPersistenceRead is an exported constant or variable used by the session engine.
	ErrPersistenceRead = errors.New("session persistence read failed")
	// ErrGatewayUnavailable is an exported constant or variable used by the session engine.
	ErrGatewayUnavailable = errors.New("credential gateway unavailable")
	// ErrEngineNotReady is an exported constant or variable used by the session engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
