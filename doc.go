// Package pagenav provides numbered-page pagination primitives.
//
// Overview
//
// pagenav computes which page links a pagination bar shows and applies the
// selected page to GORM queries:
//   - ComputeWindow: a pure function from (page, collection size, page size,
//     max size, rotate, ellipses) to the clamped page and the page numbers to
//     display, with Ellipsis entries around a truncated window.
//   - Paginator: keeps the selected page consistent with its Config and the
//     collection size, notifies page changes and builds navigation Links.
//   - PageQuery: LIMIT/OFFSET pagination with multi-column ordering for GORM.
//     FetchPage counts the dataset and loads the clamped page in one call.
//
// Key concepts
//   - Window rotation: with Rotate the selected page stays in the middle of
//     MaxSize links, otherwise pages are sliced into fixed blocks.
//   - Orderings: defines multi-column ordering with explicit directions,
//     parsed from API payloads through a ColumnMapping.
//
// Overlays opened from a pagination bar (page size menus, jump-to-page
// popovers) can be closed automatically with package autoclose.
package pagenav
