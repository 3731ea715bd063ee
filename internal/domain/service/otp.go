package service

// OTPGenerator produces the one-time passcodes used to authorize password
// resets: six decimal digits, drawn uniformly from [100000, 999999].
type OTPGenerator interface {
	Generate() (string, error)
}
