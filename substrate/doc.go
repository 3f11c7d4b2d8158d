// Package substrate provides the runtime plumbing shared by the auto and
// batch drivers: a bounded allocation counter, a memory-pressure governor,
// an optional memory ballast, a sharded best-effort cache, a structured
// logger, and a per-goroutine progress-prefix guard.
//
// None of this package changes search results; every component here is an
// optional, self-disabling accelerator or observability aid. A caller that
// never touches substrate still gets correct (if slower, or more likely to
// hit host memory limits) search behavior — grounded on
// _examples/original_source/common/runtime_component.hpp, whose PMR
// allocator, governor, and sharded cache are all explicitly "best effort"
// and degrade by disabling themselves rather than failing the search.
package substrate
