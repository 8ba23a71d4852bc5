package parse

type ParseOption func(*parseOpts)

type parseOpts struct {
	yaml bool
}

// YAML makes Parse treat the input as YAML rather than JSON.
func YAML() ParseOption {
	return func(po *parseOpts) { po.yaml = true }
}
