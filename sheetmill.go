// Package sheetmill converts files of unknown encoding and structure into
// spreadsheets. It infers the character encoding, classifies content as
// markup or delimited text, extracts tabular data leniently, squares the
// result into a rectangular table, and exports it as xlsx or legacy xlsb.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., chardet/, excelize/, sqlite/).
package sheetmill
