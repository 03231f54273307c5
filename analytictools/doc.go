// Package analytictools inspects and reorganizes a directory tree of
// greenhouse-gas measurement files.
//
// It counts files by type (GetDiagnostics, DisplayDiagnostics), renders a
// bounded tree view (DisplayDirectoryTree), recognizes original gas files
// named "<formula>.csv" (IsGasCSV) and derives the per-gas destination
// directory and flattened file name used when restructuring a dataset
// (GetDestDirFromCSVFile, MergeParentAndBasename).
//
// Path arguments are typed any and accept a string or a Path. Anything else
// fails with ErrInvalidArgumentType. Every validation failure is an
// *ArgumentError carrying a stable message.
package analytictools
