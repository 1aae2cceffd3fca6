package eznc

// statusMessages maps known EZSocket status codes, keyed by their unsigned
// 32-bit value, to human readable descriptions. Codes absent from the table
// are reported as "Unknown error".
var statusMessages = map[uint32]string{
	0x80a00101: "Communication line not open",
	0x80a00104: "Double Open Error",
	0x80a00105: "Incorrect data type of argument",
	0x80a00106: "Invalid data range of argument",
	0x80a00107: "Not Supported",
	0x80a00109: "Can't open communication line",
	0x80a0010a: "The argument is a null pointer.",
	0x80a0010b: "Invalid data for argument",
	0x80a0010c: "COMM port handle error",
	0x80b00101: "Cannot reserve memory",
	0x80b00102: "EZSocketPc error can not be obtained",
	0x80b00201: "Incorrect mode",
	0x80b00202: "Open file not open",
	0x80b00203: "File already exists",
	0x80b00204: "already open file",
	0x80b00205: "Can't create temporary file",
	0x80b00206: "File is not open in write mode",
	0x80b00207: "Incorrect write data size",
	0x80b00208: "cannot write",
	0x80b00209: "File not opened in read mode",
	0x80b0020a: "unreadable state",
	0x80b0020b: "Can't create temporary file",
	0x80b0020c: "File does not exist (read mode)",
	0x80b0020d: "Can't open file",
	0x80b0020e: "Invalid file path",
	0x80b0020f: "The read file is invalid",
	0x80b00210: "Invalid write file",
	0x80b00301: "Incorrect host name when connecting locally due to automation call",
	0x80b00302: "TCP / IP communication is not set",
	0x80b00303: "Cannot set because you are already communicating",
	0x80b00304: "There is no lower module",
	0x80b00305: "Can not create EZSocketPc object",
	0x80b00401: "Data does not exist",
	0x80b00402: "Data duplication",
	0x80b00501: "No parameter information file",
	0x80020190: "NC card number incorrect",
	0x80020102: "The device has not been opened",
	0x80020132: "Invalid Command",
	0x80020133: "Invalid communication parameter data range",
	0x80030143: "There is a problem with the file system",
	0x80030191: "The directory does not exist",
	0x8003019b: "The drive does not exist",
	0x800301a2: "Directory does not exist",
	0x800301a8: "The drive does not exist",
	0x80050d90: "Invalid system / axis specification",
	0x80050d02: "Incorrect alarm type",
	0x80050d03: "Error in communication data between NC and PC",
	0x80041194: "Incorrect specification of life management data type",
	0x80041195: "Setting data range over",
	0x80041196: "Setting tool number mismatch",
	0x80041197: "Specified tool number out of specification",
	0x80040190: "Invalid system / axis specification",
	0x80040191: "Blank number incorrect",
	0x80040192: "Incorrect Subdivision Number",
	0x80040196: "I can not fit into the buffer prepared by the application",
	0x80040197: "Invalid data type",
	0x8004019d: "The data can not be read",
	0x8004019f: "write only data",
	0x800401a0: "axis specification invalid",
	0x800401a1: "Data number invalid",
	0x800401a3: "No read data",
	0x8004019a: "Invalid read data range",
	0x80040290: "Invalid system / axis specification",
	0x80040291: "Blank number incorrect",
	0x80040292: "Incorrect Subdivision Number",
	0x80040296: "I can not fit into the buffer prepared by the application",
	0x80040297: "Incorrect data type",
	0x8004029b: "Read only data",
	0x8004029e: "Data can not be written",
	0x800402a0: "axis specification invalid",
	0x8004024d: "Secure Password Locked",
	0x800402a2: "Format aborted due to invalid SRAM open parameter",
	0x800402a4: "Can't register edit file (already editing)",
	0x800402a5: "Can't release edit file",
	0x800402a3: "No data to write to",
	0x8004029a: "Invalid write data range",
	0x800402a6: "Security Password not set",
	0x800402a7: "Safety Data Integrity Check Error",
	0x800402a9: "No data type for safety",
	0x800402a8: "Can not write in tool data sort",
	0x80040501: "High-speed readout not registered",
	0x80040402: "priority specified incorrectly",
	0x80040401: "The number of registrations has been exceeded",
	0x80040490: "Incorrect Address",
	0x80040491: "Blank number incorrect",
	0x80040492: "Incorrect Subdivision Number",
	0x80040497: "Incorrect data type",
	0x8004049b: "Read only data",
	0x8004049d: "The data can not be read",
	0x8004049f: "write only data",
	0x800404a0: "Axis specification invalid",
	0x80040ba3: "No rethreading position set",
	0x80030101: "Another directory is already open",
	0x80030103: "Data size over",
	0x80030148: "Long file name",
	0x80030198: "Invalid file name format",
	0x80030190: "Not Opened",
	0x80030194: "File information read error",
	0x80030102: "Another directory has already been opened (PC only)",
	0x800301a0: "not open",
	0x800301a1: "File does not exist",
	0x800301a5: "File information read error",
	0x80030447: "Can not copy (during operation)",
	0x80030403: "Over registration number",
	0x80030401: "The destination file already exists",
	0x80030443: "There is a problem with the file system",
	0x80030448: "Long file name",
	0x80030498: "Invalid file name format",
	0x80030404: "Memory capacity over",
	0x80030491: "Directory does not exist",
	0x8003049b: "The drive does not exist",
	0x80030442: "File does not exist",
	0x80030446: "Can not copy (PLC in operation)",
	0x80030494: "The transfer source file can not be read",
	0x80030495: "Can not write to destination file",
	0x8003044a: "Can not copy (protect)",
	0x80030405: "Verification error",
	0x80030449: "does not support the matching feature",
	0x8003044c: "Copying files",
	0x80030490: "file not open",
	0x8003044d: "Secure Password Locked",
	0x8003049d: "Invalid file format",
	0x8003049e: "The password is different",
	0x800304a4: "File can not be created (PC only)",
	0x800304a3: "Can't open file (PC only)",
	0x80030402: "The destination file already exists",
	0x800304a7: "Invalid file name format",
	0x800304a2: "Directory does not exist",
	0x800304a8: "The drive does not exist",
	0x800304a1: "File does not exist",
	0x800304a5: "The transfer source file can not be read",
	0x800304a6: "Can not write to destination file",
	0x80030406: "Disk capacity over",
	0x800304a0: "file not open",
	0x80030201: "Can't delete files",
	0x80030242: "File does not exist",
	0x80030243: "There is a problem with the file system",
	0x80030247: "Can not delete (during operation)",
	0x80030248: "long file name",
	0x8003024a: "The file can not be deleted (protected)",
	0x80030291: "Directory does not exist",
	0x80030298: "Invalid file name format",
	0x8003029b: "The drive does not exist",
	0x80030202: "Can't delete files",
	0x800302a7: "Invalid file name format",
	0x800302a2: "Directory does not exist",
	0x800302a8: "The drive does not exist",
	0x800302a1: "File does not exist",
	0x80030301: "New file name already exists",
	0x80030342: "File does not exist",
	0x80030343: "There is a problem with the file system",
	0x80030347: "Can not rename (during operation)",
	0x80030348: "Long file name",
	0x8003034a: "Can not rename (Protect)",
	0x80030391: "The directory does not exist",
	0x80030398: "Invalid file name format",
	0x8003039b: "The drive does not exist",
	0x80030303: "Can't rename",
	0x80030305: "The new and old file names are the same",
	0x80030302: "New file name already exists",
	0x800303a7: "Invalid file name format",
	0x800303a2: "The directory does not exist",
	0x800303a8: "The drive does not exist",
	0x800303a1: "File does not exist",
	0x80030691: "The directory does not exist",
	0x8003069b: "The drive does not exist",
	0x80030643: "There is a problem with the file system",
	0x80030648: "Long file name or incorrect format",
	0x800306a2: "Directory does not exist (PC only)",
	0x800306a8: "Drive does not exist (PC only)",
	0x80030701: "I can not fit into the buffer prepared by the application",
	0x80030794: "Drive information read error",
	0x82020001: "already open",
	0x82020002: "Not Opened",
	0x82020004: "card does not exist",
	0x82020006: "Invalid Channel Number",
	0x82020007: "The file descriptor is invalid",
	0x8202000a: "Not Connected",
	0x8202000b: "not closed",
	0x82020014: "timeout",
	0x82020015: "Invalid data",
	0x82020016: "Canceled due to cancel request",
	0x82020017: "Incorrect packet size",
	0x82020018: "Ended by task end",
	0x82020032: "The command is invalid",
	0x82020033: "Incorrect setting data",
	0x80060001: "Data read cache disabled",
	0x80060090: "Incorrect Address",
	0x80060091: "Blank number incorrect",
	0x80060092: "Incorrect Subdivision Number",
	0x80060097: "Incorrect data type",
	0x8006009a: "Invalid data range",
	0x8006009d: "The data can not be read",
	0x8006009f: "Incorrect data type",
	0x800600a0: "axis specification invalid",
	0x80070140: "Can't reserve work area",
	0x80070142: "Can't open file",
	0x80070147: "The file can not be opened (during operation)",
	0x80070148: "long file path",
	0x80070149: "Not supported (CF not supported)",
	0x80070192: "already open",
	0x80070199: "The maximum number of open files has been exceeded",
	0x8007019f: "Can not open during tool data sorting",
	0x800701b0: "Security password not certified",
	0x80070290: "File not open",
	0x80070340: "Can't reserve work area",
	0x80070347: "File can not be created (during operation)",
	0x80070348: "long file path",
	0x80070349: "Not supported (CF not supported)",
	0x80070392: "Already generated",
	0x80070393: "Can't create file",
	0x80070399: "The maximum number of open files has been exceeded",
	0x8007039b: "The drive does not exist",
	0x80070490: "file not open",
	0x80070494: "File information read error",
	0x80070549: "Not writable",
	0x80070590: "File not open",
	0x80070595: "File write error",
	0x80070740: "File Delete Error",
	0x80070742: "File does not exist 3-6",
	0x80070747: "The file can not be deleted (during operation)",
	0x80070748: "long file path",
	0x80070749: "Not supported (CF not supported)",
	0x80070792: "file is open",
	0x8007079b: "The drive does not exist",
	0x80070842: "File does not exist",
	0x80070843: "File that can not be renamed",
	0x80070848: "long file path",
	0x80070849: "Not supported (CF not supported)",
	0x80070892: "The file is open",
	0x80070899: "The maximum number of open files has been exceeded",
	0x8007089b: "The drive does not exist",
	0x80070944: "Invalid command (not supported)",
	0x80070990: "Not Opened",
	0x80070994: "Read error",
	0x80070995: "Write Error",
	0x80070996: "I can not fit into the buffer prepared by the application",
	0x80070997: "Invalid data type",
	0x80070949: "Not supported (CF not supported)",
	0x80070a40: "Can't reserve work area",
	0x80070a47: "The directory can not be opened (during operation)",
	0x80070a48: "long file path",
	0x80070a49: "Not supported (CF not supported)",
	0x80070a91: "Directory does not exist",
	0x80070a92: "already open",
	0x80070a99: "The maximum number of open directories has been exceeded",
	0x80070a9b: "The drive does not exist",
	0x80070b90: "The directory has not been opened",
	0x80070b91: "Directory does not exist",
	0x80070b96: "I can not fit into the buffer prepared by the application",
	0x80070d90: "The directory has not been opened",
	0x80070e48: "long file path",
	0x80070e49: "Supported (CF not supported)",
	0x80070e94: "Error reading file information",
	0x80070e99: "The maximum number of open files has been exceeded",
	0x80070e9b: "The drive does not exist",
	0x80070f48: "long file path",
	0x80070f49: "Not supported (CF not supported)",
	0x80070f94: "Error reading file information",
	0x80070f90: "The file has not been opened",
	0x80070f9b: "The drive does not exist",
	0x8007099c: "Sorry, open format invalid and abort format",
	0xf00000ff: "Invalid argument",
	0xffffffff: "data can not be read / written",
}
