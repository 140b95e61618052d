package filehandler

const newline = "\r\n"
