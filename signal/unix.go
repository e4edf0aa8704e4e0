//go:build unix

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

import "golang.org/x/sys/unix"

// EAGAIN and EWOULDBLOCK share a value on Unix platforms, so only the
// former appears here.
const (
	errEACCES          = unix.EACCES
	errEFAULT          = unix.EFAULT
	errEINVAL          = unix.EINVAL
	errEMFILE          = unix.EMFILE
	errEAGAIN          = unix.EAGAIN
	errEINPROGRESS     = unix.EINPROGRESS
	errEINTR           = unix.EINTR
	errEMSGSIZE        = unix.EMSGSIZE
	errEPROTONOSUPPORT = unix.EPROTONOSUPPORT
	errEAFNOSUPPORT    = unix.EAFNOSUPPORT
	errEADDRNOTAVAIL   = unix.EADDRNOTAVAIL
	errEADDRINUSE      = unix.EADDRINUSE
	errENETDOWN        = unix.ENETDOWN
	errENETUNREACH     = unix.ENETUNREACH
	errENETRESET       = unix.ENETRESET
	errECONNABORTED    = unix.ECONNABORTED
	errECONNRESET      = unix.ECONNRESET
	errECONNREFUSED    = unix.ECONNREFUSED
	errEHOSTUNREACH    = unix.EHOSTUNREACH
	errENOBUFS         = unix.ENOBUFS
	errENOTCONN        = unix.ENOTCONN
	errETIMEDOUT       = unix.ETIMEDOUT
	errENOENT          = unix.ENOENT
)
