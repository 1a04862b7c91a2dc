// Package mmfile loads save images from disk, memory-mapping them where the
// platform allows. Mappings are read-only; callers that mutate must copy.
package mmfile

// maxMapSize rejects files that cannot be save images. The largest accepted
// input is a 128 KiB image with an emulator header; 16 MiB leaves generous
// headroom for container formats without risking a runaway mapping.
const maxMapSize = 16 << 20
