package main

import "syscall"

func threadID() uint64 { return uint64(syscall.Gettid()) }
