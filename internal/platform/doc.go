// Package platform provides cross-platform filesystem operations: concurrent
// tree copies out of an fs.FS and permission management. On Windows chmod is
// a no-op because Unix-style permission bits are not supported.
package platform
