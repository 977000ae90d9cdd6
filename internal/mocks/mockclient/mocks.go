// Package mockclient holds the gomock implementations of the pkg/client
// interfaces. They are generated by the go:generate directive in
// pkg/client/interface.go; regenerate them whenever those interfaces change.
package mockclient
