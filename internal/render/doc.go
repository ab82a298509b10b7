// Package render turns registered schemas into TypeScript declaration text.
//
// Each schema renders to one export interface block; blocks are grouped in
// declare namespace blocks named after their context. Output is a pure
// function of registry state: rendering twice with the same registry yields
// byte-identical text.
package render
