//go:build windows

/*
   Copyright 2026 The GoMQ Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package signal

import "golang.org/x/sys/windows"

const (
	errEACCES          = windows.WSAEACCES
	errEFAULT          = windows.WSAEFAULT
	errEINVAL          = windows.WSAEINVAL
	errEMFILE          = windows.WSAEMFILE
	errEAGAIN          = windows.WSAEWOULDBLOCK
	errEINPROGRESS     = windows.WSAEINPROGRESS
	errEINTR           = windows.WSAEINTR
	errEMSGSIZE        = windows.WSAEMSGSIZE
	errEPROTONOSUPPORT = windows.WSAEPROTONOSUPPORT
	errEAFNOSUPPORT    = windows.WSAEAFNOSUPPORT
	errEADDRNOTAVAIL   = windows.WSAEADDRNOTAVAIL
	errEADDRINUSE      = windows.WSAEADDRINUSE
	errENETDOWN        = windows.WSAENETDOWN
	errENETUNREACH     = windows.WSAENETUNREACH
	errENETRESET       = windows.WSAENETRESET
	errECONNABORTED    = windows.WSAECONNABORTED
	errECONNRESET      = windows.WSAECONNRESET
	errECONNREFUSED    = windows.WSAECONNREFUSED
	errEHOSTUNREACH    = windows.WSAEHOSTUNREACH
	errENOBUFS         = windows.WSAENOBUFS
	errENOTCONN        = windows.WSAENOTCONN
	errETIMEDOUT       = windows.WSAETIMEDOUT
	errENOENT          = windows.ERROR_FILE_NOT_FOUND
)
