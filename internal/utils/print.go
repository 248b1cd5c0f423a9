package utils

import "github.com/fatih/color"

var FaintMagenta = color.New(color.Italic, color.FgMagenta)
var HeaderFmt = color.New(color.FgCyan, color.Underline).SprintfFunc()
var ColumnFmt = color.New(color.FgYellow).SprintfFunc()
var Yellow = color.New(color.FgYellow)
var Green = color.New(color.FgGreen)
var Red = color.New(color.FgRed, color.Bold)
