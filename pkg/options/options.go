// Package options builds pointer values for option structs.
package options

func Int(v int) *int {
	return &v
}

func String(v string) *string {
	return &v
}
