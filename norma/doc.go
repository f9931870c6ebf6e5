// Package norma implements the Norma register machine and its program loader.
//
// The machine has eight non-negative integer registers (A-H), a program
// counter, and a program of labeled instructions. Each instruction either
// increments a register (ADD), decrements it with saturation at zero (SUB), or
// branches on whether it is zero (ZER). Every instruction names its successor
// labels explicitly; the machine halts as soon as the program counter names a
// label that the program does not define.
//
// The loader reads the line-oriented program text format:
//
//	# comment
//	1: ZER A 4 2
//	2: SUB A 3
//	3: ADD C 1
//
// Labels and targets may also be written as $(expr) compile-time expressions.
package norma
